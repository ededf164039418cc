package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurhub/internal/core"
)

func TestInsertAssignsIDWhenBlank(t *testing.T) {
	repo := NewRepo[core.LifeInsurance]()
	ctx := context.Background()

	saved, err := repo.Insert(ctx, core.LifeInsurance{FirstName: "Anna"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestInsertKeepsGivenID(t *testing.T) {
	repo := NewRepo[core.LifeInsurance]()

	saved, err := repo.Insert(context.Background(), core.LifeInsurance{ID: "fixed-id"})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", saved.ID)
}

func TestFindByIDMissing(t *testing.T) {
	repo := NewRepo[core.VehicleInsurance]()

	_, err := repo.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, core.ErrNoSuchInsurance)
}

func TestFindAllInsertionOrder(t *testing.T) {
	repo := NewRepo[core.PropertyInsurance]()
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		_, err := repo.Insert(ctx, core.PropertyInsurance{ID: id})
		require.NoError(t, err)
	}

	recs, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "c", recs[0].ID)
	assert.Equal(t, "a", recs[1].ID)
	assert.Equal(t, "b", recs[2].ID)
}

func TestReplaceOverwrites(t *testing.T) {
	repo := NewRepo[core.LifeInsurance]()
	ctx := context.Background()

	_, err := repo.Insert(ctx, core.LifeInsurance{ID: "x", City: "Berlin"})
	require.NoError(t, err)

	_, err = repo.Replace(ctx, core.LifeInsurance{ID: "x", City: "Hamburg"})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "Hamburg", got.City)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestDeleteByIDRemovesFromOrder(t *testing.T) {
	repo := NewRepo[core.LifeInsurance]()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := repo.Insert(ctx, core.LifeInsurance{ID: id})
		require.NoError(t, err)
	}

	require.NoError(t, repo.DeleteByID(ctx, "b"))
	require.NoError(t, repo.DeleteByID(ctx, "missing"))

	recs, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0].ID)
	assert.Equal(t, "c", recs[1].ID)
}

func TestFindByNameFilters(t *testing.T) {
	repo := NewRepo[core.LifeInsurance]()
	ctx := context.Background()

	_, err := repo.Insert(ctx, core.LifeInsurance{ID: "1", FirstName: "Anna", FamilyName: "Schmidt"})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, core.LifeInsurance{ID: "2", FirstName: "Anna", FamilyName: "Weber"})
	require.NoError(t, err)

	recs, err := repo.FindByName(ctx, "anna", "")
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	recs, err = repo.FindByName(ctx, "anna", "weber")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "2", recs[0].ID)

	recs, err = repo.FindByName(ctx, "ann", "")
	require.NoError(t, err)
	assert.Empty(t, recs, "prefix must not match")
}
