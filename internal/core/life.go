package core

import "github.com/shopspring/decimal"

// LifeInsurance is a life policy record.
type LifeInsurance struct {
	ID                     string          `json:"id"`
	FirstName              string          `json:"firstName"`
	FamilyName             string          `json:"familyName"`
	ZipCode                string          `json:"zipCode"`
	City                   string          `json:"city"`
	Address                string          `json:"address"`
	Telephone              string          `json:"telephone"`
	Email                  string          `json:"email"`
	Type                   InsuranceType   `json:"type"`
	Duration               int             `json:"duration"` // months
	PaymentPerMonth        decimal.Decimal `json:"paymentPerMonth"`
	StartDate              Date            `json:"startDate"`
	EndDate                Date            `json:"endDate"`
	HasHealthIssues        bool            `json:"hasHealthIssues"`
	HealthConditionDetails string          `json:"healthConditionDetails"`
}

func (l LifeInsurance) GetID() string { return l.ID }

func (l LifeInsurance) WithID(id string) LifeInsurance {
	l.ID = id
	return l
}

func (l LifeInsurance) HolderName() (string, string) { return l.FirstName, l.FamilyName }

func (l LifeInsurance) Kind() InsuranceType { return TypeLife }

func (l LifeInsurance) Premium() decimal.Decimal {
	return premium(l.Duration, l.PaymentPerMonth)
}

func (l LifeInsurance) ApplyUpdate(u LifeInsuranceUpdate) LifeInsurance {
	return LifeInsurance{
		ID:                     l.ID,
		FirstName:              u.FirstName,
		FamilyName:             u.FamilyName,
		ZipCode:                u.ZipCode,
		City:                   u.City,
		Address:                u.Address,
		Telephone:              u.Telephone,
		Email:                  u.Email,
		Type:                   l.Type,      // immutable after creation
		Duration:               u.Duration,
		PaymentPerMonth:        u.PaymentPerMonth,
		StartDate:              l.StartDate, // immutable after creation
		EndDate:                u.EndDate,
		HasHealthIssues:        u.HasHealthIssues,
		HealthConditionDetails: u.HealthConditionDetails,
	}
}

// LifeInsuranceDTO is the creation payload for a life record.
type LifeInsuranceDTO struct {
	FirstName              string          `json:"firstName"`
	FamilyName             string          `json:"familyName"`
	ZipCode                string          `json:"zipCode"`
	City                   string          `json:"city"`
	Address                string          `json:"address"`
	Telephone              string          `json:"telephone"`
	Email                  string          `json:"email"`
	Type                   InsuranceType   `json:"type"`
	Duration               int             `json:"duration"`
	PaymentPerMonth        decimal.Decimal `json:"paymentPerMonth"`
	StartDate              Date            `json:"startDate"`
	EndDate                Date            `json:"endDate"`
	HasHealthIssues        bool            `json:"hasHealthIssues"`
	HealthConditionDetails string          `json:"healthConditionDetails"`
}

// Record copies the payload field for field into a new record with the kind
// pinned, whatever "type" the payload claimed. The id stays empty until the
// store assigns one.
func (d LifeInsuranceDTO) Record() LifeInsurance {
	return LifeInsurance{
		FirstName:              d.FirstName,
		FamilyName:             d.FamilyName,
		ZipCode:                d.ZipCode,
		City:                   d.City,
		Address:                d.Address,
		Telephone:              d.Telephone,
		Email:                  d.Email,
		Type:                   TypeLife,
		Duration:               d.Duration,
		PaymentPerMonth:        d.PaymentPerMonth,
		StartDate:              d.StartDate,
		EndDate:                d.EndDate,
		HasHealthIssues:        d.HasHealthIssues,
		HealthConditionDetails: d.HealthConditionDetails,
	}
}

// LifeInsuranceUpdate is the update payload for a life record. It may carry
// type and startDate but both are ignored on apply.
type LifeInsuranceUpdate struct {
	FirstName              string          `json:"firstName"`
	FamilyName             string          `json:"familyName"`
	ZipCode                string          `json:"zipCode"`
	City                   string          `json:"city"`
	Address                string          `json:"address"`
	Telephone              string          `json:"telephone"`
	Email                  string          `json:"email"`
	Type                   InsuranceType   `json:"type"`
	Duration               int             `json:"duration"`
	PaymentPerMonth        decimal.Decimal `json:"paymentPerMonth"`
	StartDate              Date            `json:"startDate"`
	EndDate                Date            `json:"endDate"`
	HasHealthIssues        bool            `json:"hasHealthIssues"`
	HealthConditionDetails string          `json:"healthConditionDetails"`
}
