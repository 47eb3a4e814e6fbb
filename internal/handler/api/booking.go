package api

import (
	"net/http"

	"transfer-booking/internal/handler/httperr"
	"transfer-booking/internal/pkg/errs"
	"transfer-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	q queries.BookingQueries
}

func NewBookingHandler(q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{q: q}
}

// @Summary Get booking
// @Description Stored booking for a checkout session. Does not contact the payment provider.
// @Tags bookings
// @Produce json
// @Param sessionId path string true "Checkout session ID"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{sessionId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, err := h.q.GetBySession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		if errs.Is(err, errs.ErrBookingNotFound) {
			httperr.AbortWithCode(c, http.StatusNotFound, err, httperr.CodeSessionNotFound, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Download invoice
// @Description Tax invoice PDF for a paid booking
// @Tags bookings
// @Produce application/pdf
// @Param sessionId path string true "Checkout session ID"
// @Success 200 {file} file
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{sessionId}/invoice [get]
func (h *BookingHandler) Invoice(c *gin.Context) {
	doc, err := h.q.Invoice(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithCode(c, http.StatusNotFound, err, httperr.CodeSessionNotFound, "Booking not found", nil)
		case errs.Is(err, queries.ErrInvoiceUnavailable):
			httperr.AbortWithCode(c, http.StatusNotFound, err, httperr.CodeInvoiceUnavailable, "Invoice is available once payment is confirmed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render invoice", nil)
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}
