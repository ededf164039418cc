package core

import (
	"context"
	"fmt"
	"strings"
)

// SearchKind selects which collections a name search runs against.
type SearchKind string

const (
	SearchLife     SearchKind = "life"
	SearchProperty SearchKind = "property"
	SearchVehicle  SearchKind = "vehicle"
	SearchAll      SearchKind = "all"
)

// ParseSearchKind normalizes a type filter value. An empty value means all
// kinds; anything else unrecognized is rejected.
func ParseSearchKind(s string) (SearchKind, error) {
	switch SearchKind(strings.ToLower(s)) {
	case SearchLife:
		return SearchLife, nil
	case SearchProperty:
		return SearchProperty, nil
	case SearchVehicle:
		return SearchVehicle, nil
	case SearchAll, SearchKind(""):
		return SearchAll, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidInsuranceType, s)
}

// SearchService locates records by holder name. Matching is case-insensitive
// whole-field equality: the stored name must equal the query ignoring case,
// not merely contain it. When both names are given both must match.
type SearchService struct {
	life     Repo[LifeInsurance]
	property Repo[PropertyInsurance]
	vehicle  Repo[VehicleInsurance]
}

func NewSearchService(life Repo[LifeInsurance], property Repo[PropertyInsurance], vehicle Repo[VehicleInsurance]) *SearchService {
	return &SearchService{life: life, property: property, vehicle: vehicle}
}

func (s *SearchService) SearchLifeByName(ctx context.Context, firstName, familyName string) ([]LifeInsurance, error) {
	return searchByName(ctx, s.life, firstName, familyName)
}

func (s *SearchService) SearchPropertyByName(ctx context.Context, firstName, familyName string) ([]PropertyInsurance, error) {
	return searchByName(ctx, s.property, firstName, familyName)
}

func (s *SearchService) SearchVehicleByName(ctx context.Context, firstName, familyName string) ([]VehicleInsurance, error) {
	return searchByName(ctx, s.vehicle, firstName, familyName)
}

// SearchAllByName runs the same criteria against all three kinds and groups
// the per-kind results. The criteria check happens once up front; the three
// sub-searches then share it and cannot fail it independently.
func (s *SearchService) SearchAllByName(ctx context.Context, firstName, familyName string) (AllInsurancesResponse, error) {
	if firstName == "" && familyName == "" {
		return AllInsurancesResponse{}, ErrInvalidSearchCriteria
	}

	life, err := s.SearchLifeByName(ctx, firstName, familyName)
	if err != nil {
		return AllInsurancesResponse{}, err
	}
	property, err := s.SearchPropertyByName(ctx, firstName, familyName)
	if err != nil {
		return AllInsurancesResponse{}, err
	}
	vehicle, err := s.SearchVehicleByName(ctx, firstName, familyName)
	if err != nil {
		return AllInsurancesResponse{}, err
	}

	return AllInsurancesResponse{
		LifeInsurances:     life,
		PropertyInsurances: property,
		VehicleInsurances:  vehicle,
	}, nil
}

func searchByName[R any](ctx context.Context, repo Repo[R], firstName, familyName string) ([]R, error) {
	if firstName == "" && familyName == "" {
		return nil, ErrInvalidSearchCriteria
	}
	recs, err := repo.FindByName(ctx, firstName, familyName)
	if err != nil {
		return nil, fmt.Errorf("search by name: %w", err)
	}
	// No matches is an empty result, not an error.
	if recs == nil {
		recs = []R{}
	}
	return recs, nil
}
