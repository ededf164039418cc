package core

import (
	"context"
	"errors"
	"fmt"
)

// FinderService answers cross-kind queries over the combined portfolio:
// listing every record regardless of kind and locating a record by id when
// the caller does not know which kind it belongs to.
type FinderService struct {
	life     Repo[LifeInsurance]
	property Repo[PropertyInsurance]
	vehicle  Repo[VehicleInsurance]
}

func NewFinderService(life Repo[LifeInsurance], property Repo[PropertyInsurance], vehicle Repo[VehicleInsurance]) *FinderService {
	return &FinderService{life: life, property: property, vehicle: vehicle}
}

// GetAll returns every record of every kind as one flat list, life first,
// then property, then vehicle, each in store order.
func (s *FinderService) GetAll(ctx context.Context) ([]AnyInsurance, error) {
	life, err := s.life.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all insurances: life: %w", err)
	}
	property, err := s.property.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all insurances: property: %w", err)
	}
	vehicle, err := s.vehicle.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all insurances: vehicle: %w", err)
	}

	all := make([]AnyInsurance, 0, len(life)+len(property)+len(vehicle))
	for i := range life {
		all = append(all, AnyInsurance{Life: &life[i]})
	}
	for i := range property {
		all = append(all, AnyInsurance{Property: &property[i]})
	}
	for i := range vehicle {
		all = append(all, AnyInsurance{Vehicle: &vehicle[i]})
	}
	return all, nil
}

// GetByID checks the life, property and vehicle collections in that order and
// returns the first hit. Only when all three miss does it report
// ErrNoSuchInsurance.
func (s *FinderService) GetByID(ctx context.Context, id string) (AnyInsurance, error) {
	life, err := s.life.FindByID(ctx, id)
	if err == nil {
		return AnyInsurance{Life: &life}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return AnyInsurance{}, err
	}

	property, err := s.property.FindByID(ctx, id)
	if err == nil {
		return AnyInsurance{Property: &property}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return AnyInsurance{}, err
	}

	vehicle, err := s.vehicle.FindByID(ctx, id)
	if err == nil {
		return AnyInsurance{Vehicle: &vehicle}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return AnyInsurance{}, err
	}

	return AnyInsurance{}, ErrNoSuchInsurance
}
