package core

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// InsuranceType is the fixed category of a record. It is set when the record
// is created and never changes afterwards, even across updates.
type InsuranceType string

const (
	TypeLife     InsuranceType = "LIFE"
	TypeProperty InsuranceType = "PROPERTY"
	TypeVehicle  InsuranceType = "VEHICLE"
)

// Entity is what a record store needs from a stored record.
type Entity[R any] interface {
	GetID() string
	WithID(id string) R
	HolderName() (firstName, familyName string)
}

// Record is a full insurance record of some kind. ApplyUpdate builds the
// replacement record for an update: every field comes from the update payload
// except id, type and startDate, which are carried over from the receiver.
type Record[R, U any] interface {
	Entity[R]
	Kind() InsuranceType
	Premium() decimal.Decimal
	ApplyUpdate(u U) R
}

// CreationDTO builds a fresh record of kind R from a creation payload.
type CreationDTO[R any] interface {
	Record() R
}

// premium is the one formula shared by all kinds: duration in months times
// the monthly payment, exact decimal arithmetic.
func premium(durationMonths int, paymentPerMonth decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(durationMonths)).Mul(paymentPerMonth)
}

// AnyInsurance is a tagged union over the three record kinds. Exactly one of
// the three pointers is set. It marshals as the inner record so cross-kind
// endpoints return the same shape as the per-kind ones.
type AnyInsurance struct {
	Life     *LifeInsurance
	Property *PropertyInsurance
	Vehicle  *VehicleInsurance
}

func (a AnyInsurance) Kind() InsuranceType {
	switch {
	case a.Life != nil:
		return TypeLife
	case a.Property != nil:
		return TypeProperty
	default:
		return TypeVehicle
	}
}

func (a AnyInsurance) Premium() decimal.Decimal {
	switch {
	case a.Life != nil:
		return a.Life.Premium()
	case a.Property != nil:
		return a.Property.Premium()
	case a.Vehicle != nil:
		return a.Vehicle.Premium()
	}
	return decimal.Zero
}

func (a AnyInsurance) MarshalJSON() ([]byte, error) {
	switch {
	case a.Life != nil:
		return json.Marshal(a.Life)
	case a.Property != nil:
		return json.Marshal(a.Property)
	case a.Vehicle != nil:
		return json.Marshal(a.Vehicle)
	}
	return []byte("null"), nil
}

// AllInsurancesResponse groups per-kind result lists, as returned by the
// getall endpoint and by searches across all kinds.
type AllInsurancesResponse struct {
	LifeInsurances     []LifeInsurance     `json:"lifeInsurances"`
	PropertyInsurances []PropertyInsurance `json:"propertyInsurances"`
	VehicleInsurances  []VehicleInsurance  `json:"vehicleInsurances"`
}

// InsuranceSummary aggregates the whole portfolio.
type InsuranceSummary struct {
	TotalAmount            decimal.Decimal `json:"totalAmount"`
	LifeInsuranceCount     int64           `json:"lifeInsuranceCount"`
	PropertyInsuranceCount int64           `json:"propertyInsuranceCount"`
	VehicleInsuranceCount  int64           `json:"vehicleInsuranceCount"`
}
