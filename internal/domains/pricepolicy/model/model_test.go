package model_test

import (
	customer "deportur/internal/domains/customer/model"
	"deportur/internal/domains/pricepolicy/model"
	gModel "deportur/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(value int) *int {
	return &value
}

func TestPricePolicy_DateWindow(t *testing.T) {
	tests := []struct {
		name     string
		policy   model.PricePolicy
		expected string
	}{
		{name: "no dates", expected: "Sin restricción de fechas"},
		{
			name:     "both dates",
			policy:   model.PricePolicy{StartDate: gModel.NewDate(2025, time.December, 15), EndDate: gModel.NewDate(2026, time.January, 15)},
			expected: "2025-12-15 → 2026-01-15",
		},
		{
			name:     "open end",
			policy:   model.PricePolicy{StartDate: gModel.NewDate(2025, time.December, 15)},
			expected: "2025-12-15 → Permanente",
		},
		{
			name:     "open start",
			policy:   model.PricePolicy{EndDate: gModel.NewDate(2026, time.January, 15)},
			expected: "Inicio → 2026-01-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.policy.DateWindow())
		})
	}
}

func TestPricePolicy_DayRange(t *testing.T) {
	tests := []struct {
		name     string
		policy   model.PricePolicy
		expected string
	}{
		{name: "any", expected: "Cualquier duración"},
		{name: "zero counts as unset", policy: model.PricePolicy{MinDays: intPtr(0)}, expected: "Cualquier duración"},
		{name: "from", policy: model.PricePolicy{MinDays: intPtr(7)}, expected: "Desde 7 días"},
		{name: "up to", policy: model.PricePolicy{MaxDays: intPtr(3)}, expected: "Hasta 3 días"},
		{name: "between", policy: model.PricePolicy{MinDays: intPtr(3), MaxDays: intPtr(7)}, expected: "3 - 7 días"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.policy.DayRange())
		})
	}
}

func TestPricePolicy_Scope(t *testing.T) {
	assert.Equal(t, "General", model.PricePolicy{}.Scope())
	assert.Equal(t, "Destino: Guatapé", model.PricePolicy{Destination: &model.DestinationRef{Name: "Guatapé"}}.Scope())
	assert.Equal(t, "Equipo: Kayak", model.PricePolicy{
		Destination: &model.DestinationRef{Name: "Guatapé"},
		Equipment:   &model.EquipmentRef{Name: "Kayak"},
	}.Scope())
}

func TestType_Conditions(t *testing.T) {
	assert.True(t, model.TypeSeasonDiscount.UsesDateWindow())
	assert.True(t, model.TypePeakSurcharge.UsesDateWindow())
	assert.True(t, model.TypeDurationDiscount.UsesDayRange())
	assert.True(t, model.TypeCustomerDiscount.UsesLoyaltyTier())
	assert.False(t, model.TypeTax.UsesDateWindow() || model.TypeTax.UsesDayRange() || model.TypeTax.UsesLoyaltyTier())
	assert.Equal(t, "Oro", customer.TierGold.Label())
}
