package pricing

import (
	"fmt"

	"transfer-booking/internal/pkg/errs"
)

var (
	ErrInvalidRoute       = errs.New("invalid route")
	ErrInvalidHours       = errs.New("invalid hours")
	ErrInvalidVehicleType = errs.New("invalid vehicle type")
	ErrInvalidKind        = errs.New("invalid booking kind")
)

type QuoteRequest struct {
	Kind            Kind
	PickupLocation  string
	DropoffLocation string
	VehicleType     string
	Hours           int
	Passengers      int
	ChildSeats      int
}

type LineItem struct {
	Description string
	AmountMinor int64
}

type Quote struct {
	// Lines sum to ServiceTotalMinor.
	Lines             []LineItem
	ServiceTotalMinor int64
	Amount            Money
	Breakdown         PriceBreakdown
}

// Authority is the only source of chargeable amounts; client-supplied totals are never read.
type Authority struct {
	catalog  *Catalog
	currency string
}

func NewAuthority(catalog *Catalog) *Authority {
	return &Authority{catalog: catalog, currency: DefaultCurrency}
}

func NewDefaultAuthority() *Authority {
	return NewAuthority(DefaultCatalog())
}

func (a *Authority) Quote(req QuoteRequest) (Quote, error) {
	var lines []LineItem

	switch req.Kind {
	case KindTransfer:
		line, err := a.transferLine(req)
		if err != nil {
			return Quote{}, err
		}
		lines = append(lines, line)
	case KindHourly:
		line, err := a.hourlyLine(req)
		if err != nil {
			return Quote{}, err
		}
		lines = append(lines, line)
	default:
		return Quote{}, ErrInvalidKind
	}

	if req.ChildSeats > 0 {
		lines = append(lines, LineItem{
			Description: fmt.Sprintf("Child seat x%d", req.ChildSeats),
			AmountMinor: int64(req.ChildSeats) * a.catalog.ChildSeatSurchargeMinor,
		})
	}

	var serviceTotal int64
	for _, l := range lines {
		serviceTotal += l.AmountMinor
	}

	charge := ChargeFor(serviceTotal)
	return Quote{
		Lines:             lines,
		ServiceTotalMinor: serviceTotal,
		Amount:            NewMoney(charge, a.currency),
		Breakdown:         Breakdown(charge),
	}, nil
}

func (a *Authority) transferLine(req QuoteRequest) (LineItem, error) {
	route, ok := a.catalog.FindRoute(req.PickupLocation, req.DropoffLocation)
	if !ok {
		return LineItem{}, errs.Wrapf(ErrInvalidRoute, "no route %q -> %q", req.PickupLocation, req.DropoffLocation)
	}
	tier, ok := route.TierFor(req.Passengers)
	if !ok {
		return LineItem{}, errs.Wrapf(ErrInvalidRoute, "no tier for %d passengers", req.Passengers)
	}
	return LineItem{
		Description: fmt.Sprintf("Transfer %s to %s (%d pax)", req.PickupLocation, req.DropoffLocation, req.Passengers),
		AmountMinor: tier.PriceMinor,
	}, nil
}

func (a *Authority) hourlyLine(req QuoteRequest) (LineItem, error) {
	if req.Hours <= 0 {
		return LineItem{}, ErrInvalidHours
	}
	vehicle, ok := a.catalog.FindVehicle(req.VehicleType)
	if !ok {
		return LineItem{}, errs.Wrapf(ErrInvalidVehicleType, "unknown vehicle %q", req.VehicleType)
	}

	if req.Hours >= FullDayHours {
		return LineItem{
			Description: fmt.Sprintf("%s full-day charter", vehicle.Name),
			AmountMinor: vehicle.FullDayRateMinor,
		}, nil
	}

	hours := max(MinChargeHours, req.Hours)
	return LineItem{
		Description: fmt.Sprintf("%s charter %dh", vehicle.Name, hours),
		AmountMinor: int64(hours) * vehicle.HourlyRateMinor,
	}, nil
}
