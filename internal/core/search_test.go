package core_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurhub/internal/core"
	"insurhub/internal/store/memory"
)

type searchFixture struct {
	life     *memory.Repo[core.LifeInsurance]
	property *memory.Repo[core.PropertyInsurance]
	vehicle  *memory.Repo[core.VehicleInsurance]
	svc      *core.SearchService
}

func newSearchFixture(t *testing.T) searchFixture {
	t.Helper()
	f := searchFixture{
		life:     memory.NewRepo[core.LifeInsurance](),
		property: memory.NewRepo[core.PropertyInsurance](),
		vehicle:  memory.NewRepo[core.VehicleInsurance](),
	}
	f.svc = core.NewSearchService(f.life, f.property, f.vehicle)

	ctx := context.Background()
	pay := decimal.RequireFromString("10.00")

	_, err := f.life.Insert(ctx, core.LifeInsurance{
		FirstName: "Anna", FamilyName: "Schmidt", Type: core.TypeLife,
		Duration: 12, PaymentPerMonth: pay,
	})
	require.NoError(t, err)
	_, err = f.life.Insert(ctx, core.LifeInsurance{
		FirstName: "Annabel", FamilyName: "Schmidtke", Type: core.TypeLife,
		Duration: 12, PaymentPerMonth: pay,
	})
	require.NoError(t, err)
	_, err = f.property.Insert(ctx, core.PropertyInsurance{
		FirstName: "anna", FamilyName: "SCHMIDT", Type: core.TypeProperty,
		Duration: 12, PaymentPerMonth: pay,
	})
	require.NoError(t, err)
	_, err = f.vehicle.Insert(ctx, core.VehicleInsurance{
		FirstName: "Jonas", FamilyName: "Schmidt", Type: core.TypeVehicle,
		Duration: 12, PaymentPerMonth: pay,
	})
	require.NoError(t, err)

	return f
}

func TestSearchMatchesWholeFieldCaseInsensitive(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()

	recs, err := f.svc.SearchLifeByName(ctx, "ANNA", "")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Anna", recs[0].FirstName)
}

func TestSearchDoesNotMatchSubstrings(t *testing.T) {
	f := newSearchFixture(t)

	// "Ann" is a prefix of both stored first names but equals neither.
	recs, err := f.svc.SearchLifeByName(context.Background(), "Ann", "")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestSearchBothNamesAreConjunctive(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()

	recs, err := f.svc.SearchLifeByName(ctx, "Anna", "Schmidtke")
	require.NoError(t, err)
	assert.Empty(t, recs, "first name matches one record, family name another")

	recs, err = f.svc.SearchLifeByName(ctx, "Annabel", "Schmidtke")
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestSearchRequiresAtLeastOneName(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()

	_, err := f.svc.SearchLifeByName(ctx, "", "")
	assert.ErrorIs(t, err, core.ErrInvalidSearchCriteria)
	assert.ErrorIs(t, err, core.ErrValidation)

	_, err = f.svc.SearchAllByName(ctx, "", "")
	assert.ErrorIs(t, err, core.ErrInvalidSearchCriteria)
}

func TestSearchNoMatchesIsEmptyNotError(t *testing.T) {
	f := newSearchFixture(t)

	recs, err := f.svc.SearchVehicleByName(context.Background(), "Nobody", "")
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestSearchAllGroupsByKind(t *testing.T) {
	f := newSearchFixture(t)

	got, err := f.svc.SearchAllByName(context.Background(), "", "schmidt")
	require.NoError(t, err)

	require.Len(t, got.LifeInsurances, 1)
	assert.Equal(t, "Anna", got.LifeInsurances[0].FirstName)
	require.Len(t, got.PropertyInsurances, 1)
	assert.Equal(t, "anna", got.PropertyInsurances[0].FirstName)
	require.Len(t, got.VehicleInsurances, 1)
	assert.Equal(t, "Jonas", got.VehicleInsurances[0].FirstName)
}
