package dynamo

import (
	"github.com/shopspring/decimal"

	"insurhub/internal/core"
)

// Items mirror the Mongo document shapes: money as decimal strings, dates as
// YYYY-MM-DD strings. DynamoDB number attributes are floats on the wire, so
// strings are the only representation that keeps premiums exact.

type lifeItem struct {
	ID                     string `dynamodbav:"id"`
	FirstName              string `dynamodbav:"first_name"`
	FamilyName             string `dynamodbav:"family_name"`
	ZipCode                string `dynamodbav:"zip_code,omitempty"`
	City                   string `dynamodbav:"city,omitempty"`
	Address                string `dynamodbav:"address,omitempty"`
	Telephone              string `dynamodbav:"telephone,omitempty"`
	Email                  string `dynamodbav:"email,omitempty"`
	Type                   string `dynamodbav:"type"`
	Duration               int    `dynamodbav:"duration"`
	PaymentPerMonth        string `dynamodbav:"payment_per_month"`
	StartDate              string `dynamodbav:"start_date,omitempty"`
	EndDate                string `dynamodbav:"end_date,omitempty"`
	HasHealthIssues        bool   `dynamodbav:"has_health_issues"`
	HealthConditionDetails string `dynamodbav:"health_condition_details,omitempty"`
}

func toLifeItem(l core.LifeInsurance) lifeItem {
	return lifeItem{
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

func fromLifeItem(it lifeItem) core.LifeInsurance {
	return core.LifeInsurance{
		ID:                     it.ID,
		FirstName:              it.FirstName,
		FamilyName:             it.FamilyName,
		ZipCode:                it.ZipCode,
		City:                   it.City,
		Address:                it.Address,
		Telephone:              it.Telephone,
		Email:                  it.Email,
		Type:                   core.InsuranceType(it.Type),
		Duration:               it.Duration,
		PaymentPerMonth:        parseDecimal(it.PaymentPerMonth),
		StartDate:              parseDate(it.StartDate),
		EndDate:                parseDate(it.EndDate),
		HasHealthIssues:        it.HasHealthIssues,
		HealthConditionDetails: it.HealthConditionDetails,
	}
}

type propertyItem struct {
	ID               string `dynamodbav:"id"`
	FirstName        string `dynamodbav:"first_name"`
	FamilyName       string `dynamodbav:"family_name"`
	ZipCode          string `dynamodbav:"zip_code,omitempty"`
	City             string `dynamodbav:"city,omitempty"`
	Address          string `dynamodbav:"address,omitempty"`
	Telephone        string `dynamodbav:"telephone,omitempty"`
	Email            string `dynamodbav:"email,omitempty"`
	Type             string `dynamodbav:"type"`
	Duration         int    `dynamodbav:"duration"`
	PaymentPerMonth  string `dynamodbav:"payment_per_month"`
	StartDate        string `dynamodbav:"start_date,omitempty"`
	EndDate          string `dynamodbav:"end_date,omitempty"`
	PropertyType     string `dynamodbav:"property_type,omitempty"`
	PropertyAddress  string `dynamodbav:"property_address,omitempty"`
	ConstructionYear int    `dynamodbav:"construction_year,omitempty"`
}

func toPropertyItem(p core.PropertyInsurance) propertyItem {
	return propertyItem{
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

func fromPropertyItem(it propertyItem) core.PropertyInsurance {
	return core.PropertyInsurance{
		ID:               it.ID,
		FirstName:        it.FirstName,
		FamilyName:       it.FamilyName,
		ZipCode:          it.ZipCode,
		City:             it.City,
		Address:          it.Address,
		Telephone:        it.Telephone,
		Email:            it.Email,
		Type:             core.InsuranceType(it.Type),
		Duration:         it.Duration,
		PaymentPerMonth:  parseDecimal(it.PaymentPerMonth),
		StartDate:        parseDate(it.StartDate),
		EndDate:          parseDate(it.EndDate),
		PropertyType:     it.PropertyType,
		PropertyAddress:  it.PropertyAddress,
		ConstructionYear: it.ConstructionYear,
	}
}

type vehicleItem struct {
	ID                 string `dynamodbav:"id"`
	FirstName          string `dynamodbav:"first_name"`
	FamilyName         string `dynamodbav:"family_name"`
	ZipCode            string `dynamodbav:"zip_code,omitempty"`
	City               string `dynamodbav:"city,omitempty"`
	Address            string `dynamodbav:"address,omitempty"`
	Telephone          string `dynamodbav:"telephone,omitempty"`
	Email              string `dynamodbav:"email,omitempty"`
	Type               string `dynamodbav:"type"`
	Duration           int    `dynamodbav:"duration"`
	PaymentPerMonth    string `dynamodbav:"payment_per_month"`
	StartDate          string `dynamodbav:"start_date,omitempty"`
	EndDate            string `dynamodbav:"end_date,omitempty"`
	VehicleMake        string `dynamodbav:"vehicle_make,omitempty"`
	VehicleModel       string `dynamodbav:"vehicle_model,omitempty"`
	VehicleYear        int    `dynamodbav:"vehicle_year,omitempty"`
	LicensePlateNumber string `dynamodbav:"license_plate_number,omitempty"`
}

func toVehicleItem(v core.VehicleInsurance) vehicleItem {
	return vehicleItem{
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

func fromVehicleItem(it vehicleItem) core.VehicleInsurance {
	return core.VehicleInsurance{
		ID:                 it.ID,
		FirstName:          it.FirstName,
		FamilyName:         it.FamilyName,
		ZipCode:            it.ZipCode,
		City:               it.City,
		Address:            it.Address,
		Telephone:          it.Telephone,
		Email:              it.Email,
		Type:               core.InsuranceType(it.Type),
		Duration:           it.Duration,
		PaymentPerMonth:    parseDecimal(it.PaymentPerMonth),
		StartDate:          parseDate(it.StartDate),
		EndDate:            parseDate(it.EndDate),
		VehicleMake:        it.VehicleMake,
		VehicleModel:       it.VehicleModel,
		VehicleYear:        it.VehicleYear,
		LicensePlateNumber: it.LicensePlateNumber,
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
