package mongo

import (
	"github.com/shopspring/decimal"

	"insurhub/internal/core"
)

// One collection per policy kind, matching the persisted layout of the
// original data set.
const (
	ColLife     = "life_insurance"
	ColProperty = "property_insurance"
	ColVehicle  = "vehicle_insurance"
)

// Monetary values are stored as decimal strings and dates as YYYY-MM-DD
// strings; both survive the round trip without losing precision. Only this
// package writes these fields, so the tolerant parse helpers below never see
// anything but their own output or an empty field.

// Life
type LifeDoc struct {
	ID                     string `bson:"_id"`
	FirstName              string `bson:"first_name"`
	FamilyName             string `bson:"family_name"`
	ZipCode                string `bson:"zip_code,omitempty"`
	City                   string `bson:"city,omitempty"`
	Address                string `bson:"address,omitempty"`
	Telephone              string `bson:"telephone,omitempty"`
	Email                  string `bson:"email,omitempty"`
	Type                   string `bson:"type"`
	Duration               int    `bson:"duration"`
	PaymentPerMonth        string `bson:"payment_per_month"`
	StartDate              string `bson:"start_date,omitempty"`
	EndDate                string `bson:"end_date,omitempty"`
	HasHealthIssues        bool   `bson:"has_health_issues"`
	HealthConditionDetails string `bson:"health_condition_details,omitempty"`
}

func toLifeDoc(l core.LifeInsurance) LifeDoc {
	return LifeDoc{
		ID:                     l.ID,
		FirstName:              l.FirstName,
		FamilyName:             l.FamilyName,
		ZipCode:                l.ZipCode,
		City:                   l.City,
		Address:                l.Address,
		Telephone:              l.Telephone,
		Email:                  l.Email,
		Type:                   string(l.Type),
		Duration:               l.Duration,
		PaymentPerMonth:        l.PaymentPerMonth.String(),
		StartDate:              l.StartDate.String(),
		EndDate:                l.EndDate.String(),
		HasHealthIssues:        l.HasHealthIssues,
		HealthConditionDetails: l.HealthConditionDetails,
	}
}

func fromLifeDoc(d LifeDoc) core.LifeInsurance {
	return core.LifeInsurance{
		ID:                     d.ID,
		FirstName:              d.FirstName,
		FamilyName:             d.FamilyName,
		ZipCode:                d.ZipCode,
		City:                   d.City,
		Address:                d.Address,
		Telephone:              d.Telephone,
		Email:                  d.Email,
		Type:                   core.InsuranceType(d.Type),
		Duration:               d.Duration,
		PaymentPerMonth:        parseDecimal(d.PaymentPerMonth),
		StartDate:              parseDate(d.StartDate),
		EndDate:                parseDate(d.EndDate),
		HasHealthIssues:        d.HasHealthIssues,
		HealthConditionDetails: d.HealthConditionDetails,
	}
}

// Property
type PropertyDoc struct {
	ID               string `bson:"_id"`
	FirstName        string `bson:"first_name"`
	FamilyName       string `bson:"family_name"`
	ZipCode          string `bson:"zip_code,omitempty"`
	City             string `bson:"city,omitempty"`
	Address          string `bson:"address,omitempty"`
	Telephone        string `bson:"telephone,omitempty"`
	Email            string `bson:"email,omitempty"`
	Type             string `bson:"type"`
	Duration         int    `bson:"duration"`
	PaymentPerMonth  string `bson:"payment_per_month"`
	StartDate        string `bson:"start_date,omitempty"`
	EndDate          string `bson:"end_date,omitempty"`
	PropertyType     string `bson:"property_type,omitempty"`
	PropertyAddress  string `bson:"property_address,omitempty"`
	ConstructionYear int    `bson:"construction_year,omitempty"`
}

func toPropertyDoc(p core.PropertyInsurance) PropertyDoc {
	return PropertyDoc{
		ID:               p.ID,
		FirstName:        p.FirstName,
		FamilyName:       p.FamilyName,
		ZipCode:          p.ZipCode,
		City:             p.City,
		Address:          p.Address,
		Telephone:        p.Telephone,
		Email:            p.Email,
		Type:             string(p.Type),
		Duration:         p.Duration,
		PaymentPerMonth:  p.PaymentPerMonth.String(),
		StartDate:        p.StartDate.String(),
		EndDate:          p.EndDate.String(),
		PropertyType:     p.PropertyType,
		PropertyAddress:  p.PropertyAddress,
		ConstructionYear: p.ConstructionYear,
	}
}

func fromPropertyDoc(d PropertyDoc) core.PropertyInsurance {
	return core.PropertyInsurance{
		ID:               d.ID,
		FirstName:        d.FirstName,
		FamilyName:       d.FamilyName,
		ZipCode:          d.ZipCode,
		City:             d.City,
		Address:          d.Address,
		Telephone:        d.Telephone,
		Email:            d.Email,
		Type:             core.InsuranceType(d.Type),
		Duration:         d.Duration,
		PaymentPerMonth:  parseDecimal(d.PaymentPerMonth),
		StartDate:        parseDate(d.StartDate),
		EndDate:          parseDate(d.EndDate),
		PropertyType:     d.PropertyType,
		PropertyAddress:  d.PropertyAddress,
		ConstructionYear: d.ConstructionYear,
	}
}

// Vehicle
type VehicleDoc struct {
	ID                 string `bson:"_id"`
	FirstName          string `bson:"first_name"`
	FamilyName         string `bson:"family_name"`
	ZipCode            string `bson:"zip_code,omitempty"`
	City               string `bson:"city,omitempty"`
	Address            string `bson:"address,omitempty"`
	Telephone          string `bson:"telephone,omitempty"`
	Email              string `bson:"email,omitempty"`
	Type               string `bson:"type"`
	Duration           int    `bson:"duration"`
	PaymentPerMonth    string `bson:"payment_per_month"`
	StartDate          string `bson:"start_date,omitempty"`
	EndDate            string `bson:"end_date,omitempty"`
	VehicleMake        string `bson:"vehicle_make,omitempty"`
	VehicleModel       string `bson:"vehicle_model,omitempty"`
	VehicleYear        int    `bson:"vehicle_year,omitempty"`
	LicensePlateNumber string `bson:"license_plate_number,omitempty"`
}

func toVehicleDoc(v core.VehicleInsurance) VehicleDoc {
	return VehicleDoc{
		ID:                 v.ID,
		FirstName:          v.FirstName,
		FamilyName:         v.FamilyName,
		ZipCode:            v.ZipCode,
		City:               v.City,
		Address:            v.Address,
		Telephone:          v.Telephone,
		Email:              v.Email,
		Type:               string(v.Type),
		Duration:           v.Duration,
		PaymentPerMonth:    v.PaymentPerMonth.String(),
		StartDate:          v.StartDate.String(),
		EndDate:            v.EndDate.String(),
		VehicleMake:        v.VehicleMake,
		VehicleModel:       v.VehicleModel,
		VehicleYear:        v.VehicleYear,
		LicensePlateNumber: v.LicensePlateNumber,
	}
}

func fromVehicleDoc(d VehicleDoc) core.VehicleInsurance {
	return core.VehicleInsurance{
		ID:                 d.ID,
		FirstName:          d.FirstName,
		FamilyName:         d.FamilyName,
		ZipCode:            d.ZipCode,
		City:               d.City,
		Address:            d.Address,
		Telephone:          d.Telephone,
		Email:              d.Email,
		Type:               core.InsuranceType(d.Type),
		Duration:           d.Duration,
		PaymentPerMonth:    parseDecimal(d.PaymentPerMonth),
		StartDate:          parseDate(d.StartDate),
		EndDate:            parseDate(d.EndDate),
		VehicleMake:        d.VehicleMake,
		VehicleModel:       d.VehicleModel,
		VehicleYear:        d.VehicleYear,
		LicensePlateNumber: d.LicensePlateNumber,
	}
}

func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseDate(s string) core.Date {
	if s == "" {
		return core.Date{}
	}
	d, err := core.ParseDate(s)
	if err != nil {
		return core.Date{}
	}
	return d
}
