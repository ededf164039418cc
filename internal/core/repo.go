package core

import "context"

// Repo is the per-kind record store contract. Implementations live in
// internal/store; each policy kind gets its own backing collection.
type Repo[R any] interface {
	// Insert persists a new record, assigning an id when the record carries
	// none, and returns the stored record.
	Insert(ctx context.Context, rec R) (R, error)

	// FindByID returns ErrNoSuchInsurance when no record has the id.
	FindByID(ctx context.Context, id string) (R, error)

	// FindAll returns every record in store iteration order.
	FindAll(ctx context.Context) ([]R, error)

	// Replace overwrites the record with the same id wholesale.
	Replace(ctx context.Context, rec R) (R, error)

	// DeleteByID removes the record if present; deleting an unknown id is
	// not an error.
	DeleteByID(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)

	// FindByName matches records whose firstName and/or familyName equal the
	// given values ignoring case, whole-field. An empty argument means that
	// field is not part of the criteria; callers never pass both empty.
	FindByName(ctx context.Context, firstName, familyName string) ([]R, error)
}
