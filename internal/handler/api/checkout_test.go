//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/domain/pricing"
	"transfer-booking/internal/handler/api"
	resdto "transfer-booking/internal/handler/dto/response"
	"transfer-booking/internal/handler/httperr"
	commandsmock "transfer-booking/internal/mock/commands"
	queriesmock "transfer-booking/internal/mock/queries"
	"transfer-booking/internal/pkg/errs"
	"transfer-booking/internal/testutil"
	"transfer-booking/internal/testutil/builder"
	"transfer-booking/internal/testutil/httptest"
	"transfer-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockPricingQueries
	handler      *api.CheckoutHandler
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/quote", s.handler.Quote)
	s.router.POST("/api/checkout", s.handler.CreateCheckout)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

type testCaseCheckout struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestQuote() {
	url := "/api/quote"
	reqBody := map[string]any{
		"kind":            "transfer",
		"pickupLocation":  "Sydney Airport",
		"dropoffLocation": "Sydney CBD",
		"passengers":      2,
		"childSeats":      1,
	}
	domainReq := pricing.QuoteRequest{
		Kind:            pricing.KindTransfer,
		PickupLocation:  "Sydney Airport",
		DropoffLocation: "Sydney CBD",
		Passengers:      2,
		ChildSeats:      1,
	}
	quote, err := pricing.NewDefaultAuthority().Quote(domainReq)
	s.Require().NoError(err)

	s.Run("success: returns amount and the shared breakdown", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), domainReq).Return(&quote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(quote.Amount.AmountMinor(), body.AmountMinor)
		s.Equal("aud", body.Currency)
		s.Equal(pricing.Breakdown(quote.Amount.AmountMinor()), body.Breakdown)
		s.Len(body.Lines, 2)
	})

	s.Run("error: 400 on binding failures without pricing", func() {
		cases := []testCaseCheckout{
			{name: "missing kind", mutate: testutil.Field("kind", nil), expectCode: http.StatusBadRequest},
			{name: "unknown kind", mutate: testutil.Field("kind", "boat"), expectCode: http.StatusBadRequest},
			{name: "missing pickup", mutate: testutil.Field("pickupLocation", nil), expectCode: http.StatusBadRequest},
			{name: "zero passengers", mutate: testutil.Field("passengers", 0), expectCode: http.StatusBadRequest},
			{name: "twelve passengers", mutate: testutil.Field("passengers", 12), expectCode: http.StatusBadRequest},
			{name: "four child seats", mutate: testutil.Field("childSeats", 4), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
				httptest.AssertErrorCode(s.T(), rec, tc.expectCode, httperr.CodeValidation)
			})
		}
	})

	s.Run("error: 422 when the trip cannot be priced", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, pricing.ErrInvalidRoute).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("dropoffLocation", "Melbourne")))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "cannot be priced")
	})
}

// ================================================================================
// TestCreateCheckout
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestCreateCheckout() {
	url := "/api/checkout"
	reqBody := builder.NewBookingBuilder().BuildRequestDTO()
	quote, err := pricing.NewDefaultAuthority().Quote(builder.NewTransferIntent().QuoteRequest())
	s.Require().NoError(err)
	result := &commands.CheckoutResult{
		SessionID:   "cs_test_a1b2c3",
		RedirectURL: "https://checkout.stripe.com/c/pay/cs_test_a1b2c3",
		Quote:       quote,
	}

	s.Run("success: returns 201 with the redirect and server price", func() {
		s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), builder.NewTransferIntent()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.SessionID, body.SessionID)
		s.Equal(result.RedirectURL, body.RedirectURL)
		s.Equal(quote.Amount.AmountMinor(), body.AmountMinor)
		s.Equal(quote.Breakdown, body.Breakdown)
	})

	s.Run("success: client-supplied total is ignored", func() {
		s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), builder.NewTransferIntent()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("totalAmountMinor", 1)))

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(quote.Amount.AmountMinor(), body.AmountMinor)
	})

	s.Run("error: 400 when the body is not an intent", func() {
		cases := []testCaseCheckout{
			{name: "missing kind", mutate: testutil.Field("kind", nil), expectCode: http.StatusBadRequest},
			{name: "missing pickup", mutate: testutil.Field("pickupLocation", nil), expectCode: http.StatusBadRequest},
			{name: "passengers as string", mutate: testutil.Field("passengers", "two"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
				httptest.AssertErrorCode(s.T(), rec, tc.expectCode, httperr.CodeValidation)
			})
		}
	})

	s.Run("error: 400 lists the invalid fields", func() {
		invalid := builder.NewTransferIntent()
		invalid.CustomerEmail = "not-an-email"
		validationErr := invalid.Validate()
		s.Require().Error(validationErr)

		s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(nil, validationErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
		s.Equal("Invalid email format", httptest.ErrorDetail(s.T(), rec)["customerEmail"])
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "pricing failure",
				commandsError:  errs.Mark(pricing.ErrInvalidRoute, commands.ErrPricing),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "cannot be priced",
			},
			{
				name:           "provider failure",
				commandsError:  errs.Mark(errors.New("stripe down"), commands.ErrSessionCreation),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Payment provider unavailable",
			},
			{
				name:           "unexpected error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "invalid intent without field detail",
				commandsError:  booking.ErrInvalidIntent,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Missing or invalid booking fields",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
