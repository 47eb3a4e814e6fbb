package api

import (
	"net/http"

	"transfer-booking/internal/domain/booking"
	reqdto "transfer-booking/internal/handler/dto/request"
	resdto "transfer-booking/internal/handler/dto/response"
	"transfer-booking/internal/handler/httperr"
	"transfer-booking/internal/pkg/errs"
	"transfer-booking/internal/usecase/commands"
	"transfer-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
	q    queries.PricingQueries
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, q queries.PricingQueries) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q}
}

// @Summary Quote a trip
// @Description Price a transfer or hourly charter without opening a checkout session
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Trip to price"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/quote [post]
func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", nil)
		return
	}
	quote, err := h.q.Quote(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, httperr.CodeValidation, "Trip cannot be priced", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Create checkout session
// @Description Price the booking server-side and open a hosted payment page
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.BookingIntentRequest true "Booking intent"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/checkout [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var req reqdto.BookingIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateCheckout(c.Request.Context(), req.ToIntent())
	if err != nil {
		switch {
		case errs.Is(err, booking.ErrInvalidIntent):
			fields := booking.FieldErrors(err)
			httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Missing or invalid booking fields", fields)
		case errs.Is(err, commands.ErrPricing):
			httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, httperr.CodeValidation, "Trip cannot be priced", nil)
		case errs.Is(err, commands.ErrSessionCreation):
			httperr.AbortWithCode(c, http.StatusBadGateway, err, httperr.CodeProviderUnavailable, "Payment provider unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}
