package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestPremiumIsDurationTimesMonthlyPayment(t *testing.T) {
	rec := LifeInsurance{Duration: 48, PaymentPerMonth: money(t, "100.00")}
	assert.True(t, rec.Premium().Equal(money(t, "4800.00")),
		"got %s", rec.Premium())
}

func TestPremiumStaysExactWithCents(t *testing.T) {
	// 0.10 summed or multiplied must never pick up binary float noise.
	rec := VehicleInsurance{Duration: 3, PaymentPerMonth: money(t, "0.10")}
	assert.Equal(t, "0.30", rec.Premium().StringFixed(2))
}

func TestPremiumZeroDuration(t *testing.T) {
	rec := PropertyInsurance{Duration: 0, PaymentPerMonth: money(t, "55.00")}
	assert.True(t, rec.Premium().IsZero())
}

func TestDTOPinsKindRegardlessOfPayloadType(t *testing.T) {
	dto := LifeInsuranceDTO{FirstName: "Anna", Type: TypeVehicle}
	rec := dto.Record()
	assert.Equal(t, TypeLife, rec.Type)
	assert.Equal(t, TypeLife, rec.Kind())
	assert.Empty(t, rec.ID, "id is assigned by the store, not the payload")

	pdto := PropertyInsuranceDTO{Type: "NONSENSE"}
	assert.Equal(t, TypeProperty, pdto.Record().Type)

	vdto := VehicleInsuranceDTO{}
	assert.Equal(t, TypeVehicle, vdto.Record().Type)
}

func TestApplyUpdateKeepsIDTypeAndStartDate(t *testing.T) {
	existing := LifeInsurance{
		ID:              "abc-123",
		FirstName:       "Anna",
		FamilyName:      "Schmidt",
		City:            "Berlin",
		Type:            TypeLife,
		Duration:        48,
		PaymentPerMonth: money(t, "100.00"),
		StartDate:       NewDate(2024, time.January, 1),
		EndDate:         NewDate(2028, time.January, 1),
	}

	upd := LifeInsuranceUpdate{
		FirstName:       "Anna",
		FamilyName:      "Schmidt",
		City:            "Hamburg",
		Type:            TypeVehicle, // must be ignored
		Duration:        60,
		PaymentPerMonth: money(t, "110.00"),
		StartDate:       NewDate(2030, time.January, 1), // must be ignored
		EndDate:         NewDate(2029, time.January, 1),
	}

	got := existing.ApplyUpdate(upd)

	assert.Equal(t, "abc-123", got.ID)
	assert.Equal(t, TypeLife, got.Type)
	assert.True(t, got.StartDate.Equal(NewDate(2024, time.January, 1)))

	assert.Equal(t, "Hamburg", got.City)
	assert.Equal(t, 60, got.Duration)
	assert.True(t, got.PaymentPerMonth.Equal(money(t, "110.00")))
	assert.True(t, got.EndDate.Equal(NewDate(2029, time.January, 1)))
}

func TestApplyUpdateOverwritesUnsetFields(t *testing.T) {
	// A whole-record replace: fields the payload leaves empty go empty.
	existing := VehicleInsurance{
		ID:           "v-1",
		VehicleMake:  "Volkswagen",
		VehicleModel: "Golf",
		Type:         TypeVehicle,
	}
	got := existing.ApplyUpdate(VehicleInsuranceUpdate{VehicleMake: "Opel"})
	assert.Equal(t, "Opel", got.VehicleMake)
	assert.Empty(t, got.VehicleModel)
}

func TestAnyInsuranceKindAndPremium(t *testing.T) {
	life := LifeInsurance{Duration: 2, PaymentPerMonth: money(t, "10")}
	prop := PropertyInsurance{Duration: 3, PaymentPerMonth: money(t, "10")}
	veh := VehicleInsurance{Duration: 4, PaymentPerMonth: money(t, "10")}

	a := AnyInsurance{Life: &life}
	assert.Equal(t, TypeLife, a.Kind())
	assert.Equal(t, "20", a.Premium().String())

	a = AnyInsurance{Property: &prop}
	assert.Equal(t, TypeProperty, a.Kind())
	assert.Equal(t, "30", a.Premium().String())

	a = AnyInsurance{Vehicle: &veh}
	assert.Equal(t, TypeVehicle, a.Kind())
	assert.Equal(t, "40", a.Premium().String())
}

func TestAnyInsuranceMarshalsAsInnerRecord(t *testing.T) {
	life := LifeInsurance{ID: "l-1", FirstName: "Anna", Type: TypeLife}
	data, err := json.Marshal(AnyInsurance{Life: &life})
	require.NoError(t, err)

	var asMap map[string]any
	require.NoError(t, json.Unmarshal(data, &asMap))
	assert.Equal(t, "l-1", asMap["id"])
	assert.Equal(t, "Anna", asMap["firstName"])
	assert.NotContains(t, asMap, "Life", "the union wrapper must not leak")
}

func TestParseSearchKind(t *testing.T) {
	cases := map[string]SearchKind{
		"":         SearchAll,
		"all":      SearchAll,
		"life":     SearchLife,
		"LIFE":     SearchLife,
		"Property": SearchProperty,
		"vehicle":  SearchVehicle,
	}
	for in, want := range cases {
		got, err := ParseSearchKind(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseSearchKind("boat")
	assert.ErrorIs(t, err, ErrInvalidInsuranceType)
	assert.ErrorIs(t, err, ErrValidation)
}
