package pricing

import "math"

const (
	FeeRate = 0.03
	GSTRate = 0.10
)

// PriceBreakdown decomposes a paid total. Every consumer (quote, session view,
// invoice, email) must obtain it from Breakdown so the figures stay identical.
type PriceBreakdown struct {
	TotalPaid     int64 `json:"totalPaid"`
	ServiceTotal  int64 `json:"serviceTotal"`
	ProcessingFee int64 `json:"processingFee"`
	GST           int64 `json:"gst"`
	SubtotalExGST int64 `json:"subtotalExGst"`
}

// Breakdown never fails. Negative totals are treated as zero.
func Breakdown(totalPaidMinor int64) PriceBreakdown {
	if totalPaidMinor < 0 {
		totalPaidMinor = 0
	}

	serviceTotal := int64(math.Round(float64(totalPaidMinor) / (1 + FeeRate)))
	processingFee := totalPaidMinor - serviceTotal
	gst := int64(math.Round(float64(serviceTotal) * GSTRate / (1 + GSTRate)))

	return PriceBreakdown{
		TotalPaid:     totalPaidMinor,
		ServiceTotal:  serviceTotal,
		ProcessingFee: processingFee,
		GST:           gst,
		SubtotalExGST: serviceTotal - gst,
	}
}

// ChargeFor adds the processing fee to a service total. Breakdown(ChargeFor(x)).ServiceTotal == x.
func ChargeFor(serviceTotalMinor int64) int64 {
	if serviceTotalMinor <= 0 {
		return 0
	}
	return int64(math.Round(float64(serviceTotalMinor) * (1 + FeeRate)))
}
