package pricing

import "strings"

const (
	MinChargeHours = 2
	FullDayHours   = 8
)

type Tier struct {
	MinPassengers int
	MaxPassengers int
	PriceMinor    int64
}

type Route struct {
	From  string
	To    string
	Tiers []Tier
}

type Vehicle struct {
	Key              string
	Name             string
	MaxPassengers    int
	HourlyRateMinor  int64
	FullDayRateMinor int64
}

type Catalog struct {
	Routes                  []Route
	Vehicles                map[string]Vehicle
	ChildSeatSurchargeMinor int64
}

// FindRoute matches case-insensitively in either direction.
func (c *Catalog) FindRoute(from, to string) (Route, bool) {
	f := normalizeLocation(from)
	t := normalizeLocation(to)
	if f == "" || t == "" {
		return Route{}, false
	}

	match := func(a, b string) bool {
		return (f == a && t == b) || (f == b && t == a)
	}

	for _, r := range c.Routes {
		if match(normalizeLocation(r.From), normalizeLocation(r.To)) {
			return r, true
		}
	}
	return Route{}, false
}

func (c *Catalog) FindVehicle(key string) (Vehicle, bool) {
	v, ok := c.Vehicles[strings.ToLower(strings.TrimSpace(key))]
	return v, ok
}

func (r Route) TierFor(passengers int) (Tier, bool) {
	for _, t := range r.Tiers {
		if passengers >= t.MinPassengers && passengers <= t.MaxPassengers {
			return t, true
		}
	}
	return Tier{}, false
}

func normalizeLocation(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func transferTiers(sedan, suv, van int64) []Tier {
	return []Tier{
		{MinPassengers: 1, MaxPassengers: 4, PriceMinor: sedan},
		{MinPassengers: 5, MaxPassengers: 7, PriceMinor: suv},
		{MinPassengers: 8, MaxPassengers: 11, PriceMinor: van},
	}
}

// DefaultCatalog is the built-in Sydney price list, in AUD cents.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Routes: []Route{
			{From: "Sydney Airport", To: "Sydney CBD", Tiers: transferTiers(9500, 13500, 18500)},
			{From: "Sydney Airport", To: "North Sydney", Tiers: transferTiers(10500, 14500, 19500)},
			{From: "Sydney Airport", To: "Bondi Beach", Tiers: transferTiers(11000, 15000, 20000)},
			{From: "Sydney Airport", To: "Parramatta", Tiers: transferTiers(12500, 16500, 22000)},
			{From: "Sydney Airport", To: "Manly", Tiers: transferTiers(13500, 17500, 23500)},
			{From: "Sydney Airport", To: "Cruise Terminal", Tiers: transferTiers(9500, 13500, 18500)},
			{From: "Sydney CBD", To: "Blue Mountains", Tiers: transferTiers(39000, 46000, 56000)},
			{From: "Sydney CBD", To: "Hunter Valley", Tiers: transferTiers(52000, 61000, 74000)},
		},
		Vehicles: map[string]Vehicle{
			"sedan": {Key: "sedan", Name: "Executive sedan", MaxPassengers: 4, HourlyRateMinor: 7500, FullDayRateMinor: 52000},
			"suv":   {Key: "suv", Name: "Premium SUV", MaxPassengers: 7, HourlyRateMinor: 9500, FullDayRateMinor: 68000},
			"van":   {Key: "van", Name: "Passenger van", MaxPassengers: 11, HourlyRateMinor: 11000, FullDayRateMinor: 80000},
		},
		ChildSeatSurchargeMinor: 1500,
	}
}
