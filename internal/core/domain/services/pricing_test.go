package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleaning/internal/core/domain/model/order"
	"cleaning/internal/core/domain/services"
)

func TestPriceCalculator_BasePrice(t *testing.T) {
	calc := services.NewPriceCalculator()

	tests := []struct {
		name         string
		cleaningType string
		rooms        int
		bathrooms    int
		want         float64
	}{
		{name: "standard one room one bathroom", cleaningType: "standard", rooms: 1, bathrooms: 1, want: 7500},
		{name: "deep one room one bathroom", cleaningType: "deep", rooms: 1, bathrooms: 1, want: 9500},
		{name: "standard no rooms", cleaningType: "standard", rooms: 0, bathrooms: 0, want: 4000},
		{name: "deep three rooms two bathrooms", cleaningType: "deep", rooms: 3, bathrooms: 2, want: 15000},
		{name: "unknown type billed as standard", cleaningType: "express", rooms: 1, bathrooms: 0, want: 6000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details, err := order.NewDetails(
				"Apartment", tt.rooms, tt.bathrooms, tt.cleaningType,
				"15 Abay Ave", "", "Almaty", "", nil)
			require.NoError(t, err)

			assert.InDelta(t, tt.want, calc.BasePrice(details), 0)
		})
	}
}

func TestPriceCalculator_Total(t *testing.T) {
	calc := services.NewPriceCalculator()

	details, err := order.NewDetails(
		"Apartment", 2, 1, "standard", "15 Abay Ave", "", "Almaty", "", nil)
	require.NoError(t, err)

	window, err := order.NewItem("Window cleaning", 2, 4200)
	require.NoError(t, err)
	oven, err := order.NewItem("Oven", 1, 4500)
	require.NoError(t, err)

	// base 4000 + 2*2000 + 1*1500 = 9500; items 8400 + 4500 = 12900
	total := calc.Total(details, []order.Item{window, oven})
	assert.InDelta(t, 22400.0, total, 0)
}
