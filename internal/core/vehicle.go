package core

import "github.com/shopspring/decimal"

// VehicleInsurance is a vehicle policy record.
type VehicleInsurance struct {
	ID                 string          `json:"id"`
	FirstName          string          `json:"firstName"`
	FamilyName         string          `json:"familyName"`
	ZipCode            string          `json:"zipCode"`
	City               string          `json:"city"`
	Address            string          `json:"address"`
	Telephone          string          `json:"telephone"`
	Email              string          `json:"email"`
	Type               InsuranceType   `json:"type"`
	Duration           int             `json:"duration"` // months
	PaymentPerMonth    decimal.Decimal `json:"paymentPerMonth"`
	StartDate          Date            `json:"startDate"`
	EndDate            Date            `json:"endDate"`
	VehicleMake        string          `json:"vehicleMake"`
	VehicleModel       string          `json:"vehicleModel"`
	VehicleYear        int             `json:"vehicleYear"`
	LicensePlateNumber string          `json:"licensePlateNumber"`
}

func (v VehicleInsurance) GetID() string { return v.ID }

func (v VehicleInsurance) WithID(id string) VehicleInsurance {
	v.ID = id
	return v
}

func (v VehicleInsurance) HolderName() (string, string) { return v.FirstName, v.FamilyName }

func (v VehicleInsurance) Kind() InsuranceType { return TypeVehicle }

func (v VehicleInsurance) Premium() decimal.Decimal {
	return premium(v.Duration, v.PaymentPerMonth)
}

func (v VehicleInsurance) ApplyUpdate(u VehicleInsuranceUpdate) VehicleInsurance {
	return VehicleInsurance{
		ID:                 v.ID,
		FirstName:          u.FirstName,
		FamilyName:         u.FamilyName,
		ZipCode:            u.ZipCode,
		City:               u.City,
		Address:            u.Address,
		Telephone:          u.Telephone,
		Email:              u.Email,
		Type:               v.Type,      // immutable after creation
		Duration:           u.Duration,
		PaymentPerMonth:    u.PaymentPerMonth,
		StartDate:          v.StartDate, // immutable after creation
		EndDate:            u.EndDate,
		VehicleMake:        u.VehicleMake,
		VehicleModel:       u.VehicleModel,
		VehicleYear:        u.VehicleYear,
		LicensePlateNumber: u.LicensePlateNumber,
	}
}

// VehicleInsuranceDTO is the creation payload for a vehicle record.
type VehicleInsuranceDTO struct {
	FirstName          string          `json:"firstName"`
	FamilyName         string          `json:"familyName"`
	ZipCode            string          `json:"zipCode"`
	City               string          `json:"city"`
	Address            string          `json:"address"`
	Telephone          string          `json:"telephone"`
	Email              string          `json:"email"`
	Type               InsuranceType   `json:"type"`
	Duration           int             `json:"duration"`
	PaymentPerMonth    decimal.Decimal `json:"paymentPerMonth"`
	StartDate          Date            `json:"startDate"`
	EndDate            Date            `json:"endDate"`
	VehicleMake        string          `json:"vehicleMake"`
	VehicleModel       string          `json:"vehicleModel"`
	VehicleYear        int             `json:"vehicleYear"`
	LicensePlateNumber string          `json:"licensePlateNumber"`
}

func (d VehicleInsuranceDTO) Record() VehicleInsurance {
	return VehicleInsurance{
		FirstName:          d.FirstName,
		FamilyName:         d.FamilyName,
		ZipCode:            d.ZipCode,
		City:               d.City,
		Address:            d.Address,
		Telephone:          d.Telephone,
		Email:              d.Email,
		Type:               TypeVehicle,
		Duration:           d.Duration,
		PaymentPerMonth:    d.PaymentPerMonth,
		StartDate:          d.StartDate,
		EndDate:            d.EndDate,
		VehicleMake:        d.VehicleMake,
		VehicleModel:       d.VehicleModel,
		VehicleYear:        d.VehicleYear,
		LicensePlateNumber: d.LicensePlateNumber,
	}
}

// VehicleInsuranceUpdate is the update payload for a vehicle record.
type VehicleInsuranceUpdate struct {
	FirstName          string          `json:"firstName"`
	FamilyName         string          `json:"familyName"`
	ZipCode            string          `json:"zipCode"`
	City               string          `json:"city"`
	Address            string          `json:"address"`
	Telephone          string          `json:"telephone"`
	Email              string          `json:"email"`
	Type               InsuranceType   `json:"type"`
	Duration           int             `json:"duration"`
	PaymentPerMonth    decimal.Decimal `json:"paymentPerMonth"`
	StartDate          Date            `json:"startDate"`
	EndDate            Date            `json:"endDate"`
	VehicleMake        string          `json:"vehicleMake"`
	VehicleModel       string          `json:"vehicleModel"`
	VehicleYear        int             `json:"vehicleYear"`
	LicensePlateNumber string          `json:"licensePlateNumber"`
}
