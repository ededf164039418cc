package core

import "github.com/shopspring/decimal"

// PropertyInsurance is a property policy record.
type PropertyInsurance struct {
	ID               string          `json:"id"`
	FirstName        string          `json:"firstName"`
	FamilyName       string          `json:"familyName"`
	ZipCode          string          `json:"zipCode"`
	City             string          `json:"city"`
	Address          string          `json:"address"`
	Telephone        string          `json:"telephone"`
	Email            string          `json:"email"`
	Type             InsuranceType   `json:"type"`
	Duration         int             `json:"duration"` // months
	PaymentPerMonth  decimal.Decimal `json:"paymentPerMonth"`
	StartDate        Date            `json:"startDate"`
	EndDate          Date            `json:"endDate"`
	PropertyType     string          `json:"propertyType"`
	PropertyAddress  string          `json:"propertyAddress"`
	ConstructionYear int             `json:"constructionYear"`
}

func (p PropertyInsurance) GetID() string { return p.ID }

func (p PropertyInsurance) WithID(id string) PropertyInsurance {
	p.ID = id
	return p
}

func (p PropertyInsurance) HolderName() (string, string) { return p.FirstName, p.FamilyName }

func (p PropertyInsurance) Kind() InsuranceType { return TypeProperty }

func (p PropertyInsurance) Premium() decimal.Decimal {
	return premium(p.Duration, p.PaymentPerMonth)
}

func (p PropertyInsurance) ApplyUpdate(u PropertyInsuranceUpdate) PropertyInsurance {
	return PropertyInsurance{
		ID:               p.ID,
		FirstName:        u.FirstName,
		FamilyName:       u.FamilyName,
		ZipCode:          u.ZipCode,
		City:             u.City,
		Address:          u.Address,
		Telephone:        u.Telephone,
		Email:            u.Email,
		Type:             p.Type,      // immutable after creation
		Duration:         u.Duration,
		PaymentPerMonth:  u.PaymentPerMonth,
		StartDate:        p.StartDate, // immutable after creation
		EndDate:          u.EndDate,
		PropertyType:     u.PropertyType,
		PropertyAddress:  u.PropertyAddress,
		ConstructionYear: u.ConstructionYear,
	}
}

// PropertyInsuranceDTO is the creation payload for a property record.
type PropertyInsuranceDTO struct {
	FirstName        string          `json:"firstName"`
	FamilyName       string          `json:"familyName"`
	ZipCode          string          `json:"zipCode"`
	City             string          `json:"city"`
	Address          string          `json:"address"`
	Telephone        string          `json:"telephone"`
	Email            string          `json:"email"`
	Type             InsuranceType   `json:"type"`
	Duration         int             `json:"duration"`
	PaymentPerMonth  decimal.Decimal `json:"paymentPerMonth"`
	StartDate        Date            `json:"startDate"`
	EndDate          Date            `json:"endDate"`
	PropertyType     string          `json:"propertyType"`
	PropertyAddress  string          `json:"propertyAddress"`
	ConstructionYear int             `json:"constructionYear"`
}

func (d PropertyInsuranceDTO) Record() PropertyInsurance {
	return PropertyInsurance{
		FirstName:        d.FirstName,
		FamilyName:       d.FamilyName,
		ZipCode:          d.ZipCode,
		City:             d.City,
		Address:          d.Address,
		Telephone:        d.Telephone,
		Email:            d.Email,
		Type:             TypeProperty,
		Duration:         d.Duration,
		PaymentPerMonth:  d.PaymentPerMonth,
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		PropertyType:     d.PropertyType,
		PropertyAddress:  d.PropertyAddress,
		ConstructionYear: d.ConstructionYear,
	}
}

// PropertyInsuranceUpdate is the update payload for a property record.
type PropertyInsuranceUpdate struct {
	FirstName        string          `json:"firstName"`
	FamilyName       string          `json:"familyName"`
	ZipCode          string          `json:"zipCode"`
	City             string          `json:"city"`
	Address          string          `json:"address"`
	Telephone        string          `json:"telephone"`
	Email            string          `json:"email"`
	Type             InsuranceType   `json:"type"`
	Duration         int             `json:"duration"`
	PaymentPerMonth  decimal.Decimal `json:"paymentPerMonth"`
	StartDate        Date            `json:"startDate"`
	EndDate          Date            `json:"endDate"`
	PropertyType     string          `json:"propertyType"`
	PropertyAddress  string          `json:"propertyAddress"`
	ConstructionYear int             `json:"constructionYear"`
}
