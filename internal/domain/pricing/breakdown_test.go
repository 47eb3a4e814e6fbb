//go:build unit

package pricing_test

import (
	"testing"

	"transfer-booking/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdown(t *testing.T) {
	t.Run("known totals", func(t *testing.T) {
		cases := []struct {
			name  string
			total int64
			want  pricing.PriceBreakdown
		}{
			{
				name:  "zero",
				total: 0,
				want:  pricing.PriceBreakdown{},
			},
			{
				name:  "airport to cbd sedan",
				total: 9785,
				want: pricing.PriceBreakdown{
					TotalPaid:     9785,
					ServiceTotal:  9500,
					ProcessingFee: 285,
					GST:           864,
					SubtotalExGST: 8636,
				},
			},
			{
				name:  "one dollar",
				total: 103,
				want: pricing.PriceBreakdown{
					TotalPaid:     103,
					ServiceTotal:  100,
					ProcessingFee: 3,
					GST:           9,
					SubtotalExGST: 91,
				},
			},
			{
				name:  "negative clamps to zero",
				total: -500,
				want:  pricing.PriceBreakdown{},
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got := pricing.Breakdown(tc.total)
				if diff := cmp.Diff(tc.want, got); diff != "" {
					t.Errorf("Breakdown mismatch (-want +got):\n%s", diff)
				}
			})
		}
	})

	t.Run("components always sum to the total", func(t *testing.T) {
		for total := int64(0); total <= 250_000; total += 7 {
			b := pricing.Breakdown(total)
			require.Equal(t, total, b.ServiceTotal+b.ProcessingFee, "total=%d", total)
			require.Equal(t, b.ServiceTotal, b.SubtotalExGST+b.GST, "total=%d", total)
			require.GreaterOrEqual(t, b.ProcessingFee, int64(0), "total=%d", total)
		}
	})

	t.Run("deterministic for the same input", func(t *testing.T) {
		assert.Equal(t, pricing.Breakdown(123_457), pricing.Breakdown(123_457))
	})
}

func TestChargeFor(t *testing.T) {
	t.Run("breakdown recovers the service total exactly", func(t *testing.T) {
		for service := int64(1); service <= 200_000; service += 13 {
			charge := pricing.ChargeFor(service)
			require.Equal(t, service, pricing.Breakdown(charge).ServiceTotal, "service=%d", service)
		}
	})

	t.Run("non-positive service total charges nothing", func(t *testing.T) {
		assert.Equal(t, int64(0), pricing.ChargeFor(0))
		assert.Equal(t, int64(0), pricing.ChargeFor(-10))
	})
}

func TestFormatMinor(t *testing.T) {
	assert.Equal(t, "$0.00", pricing.FormatMinor(0))
	assert.Equal(t, "$97.85", pricing.FormatMinor(9785))
	assert.Equal(t, "-$1.05", pricing.FormatMinor(-105))
	assert.Equal(t, "$97.85 AUD", pricing.NewMoney(9785, "").String())
}
