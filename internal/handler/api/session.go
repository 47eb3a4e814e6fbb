package api

import (
	"net/http"

	"transfer-booking/internal/domain/booking"
	reqdto "transfer-booking/internal/handler/dto/request"
	resdto "transfer-booking/internal/handler/dto/response"
	"transfer-booking/internal/handler/httperr"
	"transfer-booking/internal/pkg/errs"
	"transfer-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	cmds commands.ReconcileCommands
}

func NewSessionHandler(cmds commands.ReconcileCommands) *SessionHandler {
	return &SessionHandler{cmds: cmds}
}

// @Summary Confirm checkout session
// @Description Read the live session from the payment provider and reconcile the booking. Safe to call repeatedly.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.SessionQueryRequest true "Session to confirm"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response "code session_not_found"
// @Failure 500 {object} httperr.Response "code missing_intent_metadata"
// @Failure 502 {object} httperr.Response "code provider_unavailable"
// @Router /api/checkout/session [post]
func (h *SessionHandler) ConfirmSession(c *gin.Context) {
	var req reqdto.SessionQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", nil)
		return
	}

	result, err := h.cmds.ConfirmSession(c.Request.Context(), req.SessionID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrSessionNotFound):
			httperr.AbortWithCode(c, http.StatusNotFound, err, httperr.CodeSessionNotFound, "Checkout session not found", nil)
		case errs.Is(err, booking.ErrMissingIntentMetadata):
			httperr.AbortWithCode(c, http.StatusInternalServerError, err, httperr.CodeMissingIntentMetadata, "Booking details are missing from this session", nil)
		case errs.Is(err, commands.ErrProviderUnavailable):
			httperr.AbortWithCode(c, http.StatusBadGateway, err, httperr.CodeProviderUnavailable, "Payment provider unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmResult(result))
}
