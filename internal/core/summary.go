package core

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// SummaryService aggregates the whole portfolio: one premium total across all
// kinds and a record count per kind. Totals are folded in process over the
// full collections; decimal addition keeps the sum exact regardless of order.
type SummaryService struct {
	life     Repo[LifeInsurance]
	property Repo[PropertyInsurance]
	vehicle  Repo[VehicleInsurance]
}

func NewSummaryService(life Repo[LifeInsurance], property Repo[PropertyInsurance], vehicle Repo[VehicleInsurance]) *SummaryService {
	return &SummaryService{life: life, property: property, vehicle: vehicle}
}

// TotalPremium sums duration × paymentPerMonth over every record of every
// kind. An empty store totals zero.
func (s *SummaryService) TotalPremium(ctx context.Context) (decimal.Decimal, error) {
	life, err := s.life.FindAll(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total premium: life: %w", err)
	}
	property, err := s.property.FindAll(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total premium: property: %w", err)
	}
	vehicle, err := s.vehicle.FindAll(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total premium: vehicle: %w", err)
	}

	total := foldPremiums(life)
	total = total.Add(foldPremiums(property))
	total = total.Add(foldPremiums(vehicle))
	return total, nil
}

// Counts reports the number of records per kind, each via its store's count.
func (s *SummaryService) Counts(ctx context.Context) (life, property, vehicle int64, err error) {
	if life, err = s.life.Count(ctx); err != nil {
		return 0, 0, 0, fmt.Errorf("count life: %w", err)
	}
	if property, err = s.property.Count(ctx); err != nil {
		return 0, 0, 0, fmt.Errorf("count property: %w", err)
	}
	if vehicle, err = s.vehicle.Count(ctx); err != nil {
		return 0, 0, 0, fmt.Errorf("count vehicle: %w", err)
	}
	return life, property, vehicle, nil
}

func (s *SummaryService) Summary(ctx context.Context) (InsuranceSummary, error) {
	total, err := s.TotalPremium(ctx)
	if err != nil {
		return InsuranceSummary{}, err
	}
	life, property, vehicle, err := s.Counts(ctx)
	if err != nil {
		return InsuranceSummary{}, err
	}
	return InsuranceSummary{
		TotalAmount:            total,
		LifeInsuranceCount:     life,
		PropertyInsuranceCount: property,
		VehicleInsuranceCount:  vehicle,
	}, nil
}

func foldPremiums[R interface{ Premium() decimal.Decimal }](recs []R) decimal.Decimal {
	total := decimal.Zero
	for _, r := range recs {
		total = total.Add(r.Premium())
	}
	return total
}
