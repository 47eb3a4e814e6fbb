package queries

//go:generate mockgen -source=pricing.go -destination=../../mock/queries/mock_pricing.go -package=queriesmock

import (
	"context"

	"transfer-booking/internal/domain/pricing"
)

type PriceQuoter interface {
	Quote(req pricing.QuoteRequest) (pricing.Quote, error)
}

type PricingQueries interface {
	Quote(ctx context.Context, req pricing.QuoteRequest) (*pricing.Quote, error)
}

type pricingQueriesImpl struct {
	authority PriceQuoter
}

func NewPricingQueries(authority PriceQuoter) PricingQueries {
	return &pricingQueriesImpl{authority: authority}
}

func (q *pricingQueriesImpl) Quote(_ context.Context, req pricing.QuoteRequest) (*pricing.Quote, error) {
	quote, err := q.authority.Quote(req)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}
