//go:build unit

package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"transfer-booking/internal/handler/api"
	resdto "transfer-booking/internal/handler/dto/response"
	"transfer-booking/internal/handler/httperr"
	commandsmock "transfer-booking/internal/mock/commands"
	"transfer-booking/internal/pkg/config"
	"transfer-booking/internal/pkg/errs"
	"transfer-booking/internal/testutil/httptest"
	"transfer-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const webhookMaxBody = 1024

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReconcileCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReconcileCommands(s.mockCtrl)
	h := api.NewWebhookHandler(s.mockCommands, config.StripeConfig{MaxBodyBytes: webhookMaxBody})

	s.router.POST("/api/webhooks/stripe", h.Handle)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestHandle() {
	url := "/api/webhooks/stripe"
	// deliberately odd spacing: the bytes must reach verification untouched
	payload := []byte(`{"id":"evt_1",  "type":"checkout.session.completed","data":{"object":{"id":"cs_test_a1b2c3"}}}`)
	signature := "t=1773480600,v1=deadbeef"
	headers := map[string]string{"Content-Type": "application/json", "Stripe-Signature": signature}

	s.Run("success: acknowledges handled events", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), payload, signature).
			Return(&commands.WebhookOutcome{EventType: "checkout.session.completed", Handled: true, SessionID: "cs_test_a1b2c3"}, nil).
			Times(1)

		rec := httptest.PerformRaw(s.T(), s.router, http.MethodPost, url, payload, headers)

		var body resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Received)
		s.True(body.Handled)
	})

	s.Run("success: ignored event types still get 200", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), signature).
			Return(&commands.WebhookOutcome{EventType: "invoice.paid"}, nil).Times(1)

		rec := httptest.PerformRaw(s.T(), s.router, http.MethodPost, url, payload, headers)

		var body resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Received)
		s.False(body.Handled)
	})

	s.Run("error: missing signature header is passed through and rejected", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), payload, "").
			Return(nil, errs.Mark(errors.New("no signature"), commands.ErrInvalidSignature)).Times(1)

		rec := httptest.PerformRaw(s.T(), s.router, http.MethodPost, url, payload, map[string]string{"Content-Type": "application/json"})
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidSignature)
	})

	s.Run("error: maps failures so the provider retries only transient ones", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{
				name:           "bad signature",
				commandsError:  errs.Mark(errors.New("mismatch"), commands.ErrInvalidSignature),
				expectedStatus: http.StatusBadRequest,
				expectedCode:   httperr.CodeInvalidSignature,
			},
			{
				name:           "bad payload",
				commandsError:  errs.Mark(errors.New("no session"), commands.ErrInvalidPayload),
				expectedStatus: http.StatusBadRequest,
				expectedCode:   httperr.CodeInvalidPayload,
			},
			{
				name:           "store failure",
				commandsError:  errors.New("connection reset"),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   "",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), payload, signature).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRaw(s.T(), s.router, http.MethodPost, url, payload, headers)
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})

	s.Run("error: oversized body is rejected before verification", func() {
		big := bytes.Repeat([]byte("a"), webhookMaxBody+1)

		rec := httptest.PerformRaw(s.T(), s.router, http.MethodPost, url, big, headers)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidPayload)
	})
}
