package httperr

import (
	"github.com/gin-gonic/gin"
)

// Machine-readable codes the confirmation client switches on.
const (
	CodeSessionNotFound       = "session_not_found"
	CodeMissingIntentMetadata = "missing_intent_metadata"
	CodeProviderUnavailable   = "provider_unavailable"
	CodeInvalidSignature      = "invalid_signature"
	CodeInvalidPayload        = "invalid_payload"
	CodeValidation            = "validation_failed"
	CodeInvoiceUnavailable    = "invoice_unavailable"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Code   string `json:"code,omitempty"`
	Detail any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, err, "", msg, detail)
}

func AbortWithCode(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Code: code}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
