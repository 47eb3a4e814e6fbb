package api

import (
	"io"
	"log/slog"
	"net/http"

	resdto "transfer-booking/internal/handler/dto/response"
	"transfer-booking/internal/handler/httperr"
	"transfer-booking/internal/pkg/config"
	"transfer-booking/internal/pkg/errs"
	"transfer-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const signatureHeader = "Stripe-Signature"

type WebhookHandler struct {
	cmds    commands.ReconcileCommands
	maxBody int64
}

func NewWebhookHandler(cmds commands.ReconcileCommands, cfg config.StripeConfig) *WebhookHandler {
	return &WebhookHandler{cmds: cmds, maxBody: cfg.MaxBodyBytes}
}

// @Summary Payment provider webhook
// @Description Signed checkout session events. 400 means the provider should not retry; 500 means it should.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Provider signature over the raw body"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/webhooks/stripe [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	// the signature covers the exact bytes, so the body is read raw and never re-encoded
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeInvalidPayload, "Unreadable webhook body", nil)
		return
	}

	outcome, err := h.cmds.HandleWebhook(c.Request.Context(), payload, c.GetHeader(signatureHeader))
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidSignature):
			slog.WarnContext(c.Request.Context(), "webhook signature rejected", slog.String("remote_ip", c.ClientIP()))
			httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeInvalidSignature, "Invalid signature", nil)
		case errs.Is(err, commands.ErrInvalidPayload):
			httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeInvalidPayload, "Invalid webhook payload", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Webhook processing failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.WebhookAckResponse{Received: true, Handled: outcome.Handled})
}
