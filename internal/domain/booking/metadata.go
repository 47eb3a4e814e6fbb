package booking

import (
	"strconv"

	"transfer-booking/internal/domain/pricing"
	"transfer-booking/internal/pkg/errs"
)

// ErrMissingIntentMetadata means a session carries no decodable intent: corrupted or foreign.
var ErrMissingIntentMetadata = errs.New("missing intent metadata")

const (
	metadataVersion = "1"

	mdVersion         = "intent_version"
	mdKind            = "kind"
	mdPickupLocation  = "pickup_location"
	mdDropoffLocation = "dropoff_location"
	mdVehicleType     = "vehicle_type"
	mdHours           = "hours"
	mdPickupDate      = "pickup_date"
	mdPickupTime      = "pickup_time"
	mdPassengers      = "passengers"
	mdLuggage         = "luggage"
	mdCustomerName    = "customer_name"
	mdCustomerEmail   = "customer_email"
	mdCustomerPhone   = "customer_phone"
	mdChildSeats      = "child_seats"
	mdFlightNumber    = "flight_number"
	mdNotes           = "notes"
)

// ToMetadata flattens the intent into provider metadata. Empty optional fields are omitted.
func (i Intent) ToMetadata() map[string]string {
	md := map[string]string{
		mdVersion:        metadataVersion,
		mdKind:           string(i.Kind),
		mdPickupLocation: i.PickupLocation,
		mdPickupDate:     i.PickupDate,
		mdPickupTime:     i.PickupTime,
		mdPassengers:     strconv.Itoa(i.Passengers),
		mdLuggage:        strconv.Itoa(i.Luggage),
		mdCustomerName:   i.CustomerName,
		mdCustomerEmail:  i.CustomerEmail,
		mdCustomerPhone:  i.CustomerPhone,
		mdChildSeats:     strconv.Itoa(i.ChildSeats),
	}

	optional := map[string]string{
		mdDropoffLocation: i.DropoffLocation,
		mdVehicleType:     i.VehicleType,
		mdFlightNumber:    i.FlightNumber,
		mdNotes:           i.Notes,
	}
	for k, v := range optional {
		if v != "" {
			md[k] = v
		}
	}
	if i.Hours != 0 {
		md[mdHours] = strconv.Itoa(i.Hours)
	}
	return md
}

// IntentFromMetadata rebuilds and re-validates an intent. Metadata is never trusted as-is.
func IntentFromMetadata(md map[string]string) (Intent, error) {
	if len(md) == 0 || md[mdKind] == "" {
		return Intent{}, ErrMissingIntentMetadata
	}
	if v := md[mdVersion]; v != "" && v != metadataVersion {
		return Intent{}, errs.Mark(errs.Newf("unsupported intent version %q", v), ErrMissingIntentMetadata)
	}

	ints := make(map[string]int, 5)
	for _, key := range []string{mdHours, mdPassengers, mdLuggage, mdChildSeats} {
		raw, ok := md[key]
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Intent{}, errs.Mark(errs.Wrapf(err, "metadata %s", key), ErrMissingIntentMetadata)
		}
		ints[key] = n
	}

	intent := Intent{
		Kind:            pricing.Kind(md[mdKind]),
		PickupLocation:  md[mdPickupLocation],
		DropoffLocation: md[mdDropoffLocation],
		VehicleType:     md[mdVehicleType],
		Hours:           ints[mdHours],
		PickupDate:      md[mdPickupDate],
		PickupTime:      md[mdPickupTime],
		Passengers:      ints[mdPassengers],
		Luggage:         ints[mdLuggage],
		CustomerName:    md[mdCustomerName],
		CustomerEmail:   md[mdCustomerEmail],
		CustomerPhone:   md[mdCustomerPhone],
		ChildSeats:      ints[mdChildSeats],
		FlightNumber:    md[mdFlightNumber],
		Notes:           md[mdNotes],
	}

	if err := intent.Validate(); err != nil {
		return Intent{}, errs.Mark(err, ErrMissingIntentMetadata)
	}
	return intent, nil
}
