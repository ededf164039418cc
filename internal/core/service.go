package core

import (
	"context"
	"fmt"
)

// Service is the CRUD orchestration for one policy kind. The same
// implementation serves all three kinds; only the record and update payload
// types differ.
type Service[R Record[R, U], U any] struct {
	repo Repo[R]
}

func NewService[R Record[R, U], U any](repo Repo[R]) *Service[R, U] {
	return &Service[R, U]{repo: repo}
}

// Aliases for the three instantiations wired in cmd/api.
type (
	LifeService     = Service[LifeInsurance, LifeInsuranceUpdate]
	PropertyService = Service[PropertyInsurance, PropertyInsuranceUpdate]
	VehicleService  = Service[VehicleInsurance, VehicleInsuranceUpdate]
)

// ListAll returns every record of this kind. An empty store yields an empty
// slice, never nil and never an error.
func (s *Service[R, U]) ListAll(ctx context.Context) ([]R, error) {
	recs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list insurances: %w", err)
	}
	if recs == nil {
		recs = []R{}
	}
	return recs, nil
}

func (s *Service[R, U]) GetByID(ctx context.Context, id string) (R, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists the record built from a creation payload. There is no field
// validation; whatever the payload carried is stored as-is.
func (s *Service[R, U]) Create(ctx context.Context, rec R) (R, error) {
	stored, err := s.repo.Insert(ctx, rec)
	if err != nil {
		var zero R
		return zero, fmt.Errorf("create insurance: %w", err)
	}
	return stored, nil
}

// Update fetches the existing record, overlays the update payload on it and
// replaces the stored document wholesale. The existing record is fetched
// first specifically so its type and startDate survive the overwrite.
// Concurrent updates to the same id are last-write-wins.
func (s *Service[R, U]) Update(ctx context.Context, id string, u U) (R, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		var zero R
		return zero, err
	}
	replaced, err := s.repo.Replace(ctx, existing.ApplyUpdate(u))
	if err != nil {
		var zero R
		return zero, fmt.Errorf("update insurance %s: %w", id, err)
	}
	return replaced, nil
}

// Delete removes the record by id. Deleting an id that does not exist is a
// no-op, not an error.
func (s *Service[R, U]) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete insurance %s: %w", id, err)
	}
	return nil
}

func (s *Service[R, U]) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
