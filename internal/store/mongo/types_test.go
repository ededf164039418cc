package mongo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurhub/internal/core"
)

func TestLifeDocConversion(t *testing.T) {
	rec := core.LifeInsurance{
		ID:                     "l-1",
		FirstName:              "Anna",
		FamilyName:             "Schmidt",
		ZipCode:                "10115",
		City:                   "Berlin",
		Type:                   core.TypeLife,
		Duration:               48,
		PaymentPerMonth:        decimal.RequireFromString("100.00"),
		StartDate:              core.NewDate(2024, time.January, 1),
		EndDate:                core.NewDate(2028, time.January, 1),
		HasHealthIssues:        true,
		HealthConditionDetails: "Mild asthma",
	}

	doc := toLifeDoc(rec)
	assert.Equal(t, "l-1", doc.ID)
	assert.Equal(t, "LIFE", doc.Type)
	assert.Equal(t, "100", doc.PaymentPerMonth)
	assert.Equal(t, "2024-01-01", doc.StartDate)

	back := fromLifeDoc(doc)
	assert.Equal(t, rec.ID, back.ID)
	assert.Equal(t, rec.Type, back.Type)
	assert.True(t, back.PaymentPerMonth.Equal(rec.PaymentPerMonth))
	assert.True(t, back.StartDate.Equal(rec.StartDate))
	assert.True(t, back.EndDate.Equal(rec.EndDate))
	assert.Equal(t, rec.HealthConditionDetails, back.HealthConditionDetails)
}

func TestPropertyDocConversion(t *testing.T) {
	rec := core.PropertyInsurance{
		ID:               "p-1",
		Type:             core.TypeProperty,
		Duration:         12,
		PaymentPerMonth:  decimal.RequireFromString("35.90"),
		PropertyType:     "APARTMENT",
		PropertyAddress:  "Domkloster 3, Cologne",
		ConstructionYear: 1998,
	}

	back := fromPropertyDoc(toPropertyDoc(rec))
	assert.Equal(t, rec.ID, back.ID)
	assert.Equal(t, "APARTMENT", back.PropertyType)
	assert.Equal(t, 1998, back.ConstructionYear)
	assert.Equal(t, "35.9", back.PaymentPerMonth.String())
}

func TestVehicleDocConversion(t *testing.T) {
	rec := core.VehicleInsurance{
		ID:                 "v-1",
		Type:               core.TypeVehicle,
		Duration:           24,
		PaymentPerMonth:    decimal.RequireFromString("89.00"),
		VehicleMake:        "Volkswagen",
		VehicleModel:       "Golf",
		VehicleYear:        2021,
		LicensePlateNumber: "HH-LB 4821",
	}

	back := fromVehicleDoc(toVehicleDoc(rec))
	assert.Equal(t, rec.VehicleMake, back.VehicleMake)
	assert.Equal(t, rec.VehicleYear, back.VehicleYear)
	assert.Equal(t, rec.LicensePlateNumber, back.LicensePlateNumber)
	assert.True(t, back.PaymentPerMonth.Equal(rec.PaymentPerMonth))
}

func TestZeroDatesStoreAsEmptyStrings(t *testing.T) {
	doc := toLifeDoc(core.LifeInsurance{ID: "l-2", Type: core.TypeLife})
	assert.Empty(t, doc.StartDate)
	assert.Empty(t, doc.EndDate)

	back := fromLifeDoc(doc)
	assert.True(t, back.StartDate.IsZero())
	assert.True(t, back.EndDate.IsZero())
}

func TestParseHelpersTolerateGarbage(t *testing.T) {
	assert.True(t, parseDecimal("").IsZero())
	assert.True(t, parseDecimal("not-a-number").IsZero())
	assert.True(t, parseDate("").IsZero())
	assert.True(t, parseDate("01/01/2024").IsZero())

	d, err := decimal.NewFromString("12.34")
	require.NoError(t, err)
	assert.True(t, parseDecimal("12.34").Equal(d))
}
