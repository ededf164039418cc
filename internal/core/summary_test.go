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

func newSummaryFixture() (*core.SummaryService, *memory.Repo[core.LifeInsurance], *memory.Repo[core.PropertyInsurance], *memory.Repo[core.VehicleInsurance]) {
	life := memory.NewRepo[core.LifeInsurance]()
	property := memory.NewRepo[core.PropertyInsurance]()
	vehicle := memory.NewRepo[core.VehicleInsurance]()
	return core.NewSummaryService(life, property, vehicle), life, property, vehicle
}

func TestSummaryEmptyPortfolio(t *testing.T) {
	svc, _, _, _ := newSummaryFixture()

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, sum.TotalAmount.IsZero())
	assert.Zero(t, sum.LifeInsuranceCount)
	assert.Zero(t, sum.PropertyInsuranceCount)
	assert.Zero(t, sum.VehicleInsuranceCount)
}

func TestSummaryFoldsPremiumsAcrossKinds(t *testing.T) {
	svc, life, property, vehicle := newSummaryFixture()
	ctx := context.Background()

	// 48 * 100.00 + 12 * 50.00 + 24 * 225.00 = 4800 + 600 + 5400 = 10800
	_, err := life.Insert(ctx, core.LifeInsurance{
		Type: core.TypeLife, Duration: 48,
		PaymentPerMonth: decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)
	_, err = property.Insert(ctx, core.PropertyInsurance{
		Type: core.TypeProperty, Duration: 12,
		PaymentPerMonth: decimal.RequireFromString("50.00"),
	})
	require.NoError(t, err)
	_, err = vehicle.Insert(ctx, core.VehicleInsurance{
		Type: core.TypeVehicle, Duration: 24,
		PaymentPerMonth: decimal.RequireFromString("225.00"),
	})
	require.NoError(t, err)

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "10800.00", sum.TotalAmount.StringFixed(2))
	assert.EqualValues(t, 1, sum.LifeInsuranceCount)
	assert.EqualValues(t, 1, sum.PropertyInsuranceCount)
	assert.EqualValues(t, 1, sum.VehicleInsuranceCount)
}

func TestTotalPremiumStaysExact(t *testing.T) {
	svc, life, _, _ := newSummaryFixture()
	ctx := context.Background()

	// Ten records of 1 month at 0.10 each must total exactly 1.00.
	for i := 0; i < 10; i++ {
		_, err := life.Insert(ctx, core.LifeInsurance{
			Type: core.TypeLife, Duration: 1,
			PaymentPerMonth: decimal.RequireFromString("0.10"),
		})
		require.NoError(t, err)
	}

	total, err := svc.TotalPremium(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.00", total.StringFixed(2))
}
