package response

import (
	"transfer-booking/internal/domain/pricing"
	"transfer-booking/internal/usecase/commands"
	"transfer-booking/internal/usecase/queries"
)

type LineItemResponse struct {
	Description string `json:"description"`
	AmountMinor int64  `json:"amountMinor"`
}

type QuoteResponse struct {
	AmountMinor       int64                  `json:"amountMinor"`
	Currency          string                 `json:"currency"`
	ServiceTotalMinor int64                  `json:"serviceTotalMinor"`
	Lines             []LineItemResponse     `json:"lines"`
	Breakdown         pricing.PriceBreakdown `json:"breakdown"`
}

type CheckoutResponse struct {
	SessionID   string                 `json:"sessionId"`
	RedirectURL string                 `json:"redirectUrl"`
	AmountMinor int64                  `json:"amountMinor"`
	Currency    string                 `json:"currency"`
	Breakdown   pricing.PriceBreakdown `json:"breakdown"`
}

type SessionResponse struct {
	Paid    bool                 `json:"paid"`
	Booking *queries.BookingView `json:"booking"`
}

type WebhookAckResponse struct {
	Received bool `json:"received"`
	Handled  bool `json:"handled"`
}

func FromQuote(q *pricing.Quote) *QuoteResponse {
	lines := make([]LineItemResponse, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, LineItemResponse{Description: l.Description, AmountMinor: l.AmountMinor})
	}
	return &QuoteResponse{
		AmountMinor:       q.Amount.AmountMinor(),
		Currency:          q.Amount.Currency(),
		ServiceTotalMinor: q.ServiceTotalMinor,
		Lines:             lines,
		Breakdown:         q.Breakdown,
	}
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		SessionID:   r.SessionID,
		RedirectURL: r.RedirectURL,
		AmountMinor: r.Quote.Amount.AmountMinor(),
		Currency:    r.Quote.Amount.Currency(),
		Breakdown:   r.Quote.Breakdown,
	}
}

func FromConfirmResult(r *commands.ConfirmResult) *SessionResponse {
	return &SessionResponse{
		Paid:    r.Paid,
		Booking: queries.NewBookingView(r.Booking),
	}
}
