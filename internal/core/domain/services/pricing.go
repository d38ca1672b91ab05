package services

import (
	"cleaning/internal/core/domain/model/order"
)

// Pricing rates in tenge. The base price covers the rooms and bathrooms of
// the property; itemized add-on services are billed on top.
const (
	baseRateStandard = 4000.0
	baseRateDeep     = 6000.0
	ratePerRoom      = 2000.0
	ratePerBathroom  = 1500.0
)

// CleaningTypeDeep is the cleaning classification billed at the higher base rate.
// Any other classification is billed at the standard rate.
const CleaningTypeDeep = "deep"

// PriceCalculator is a domain service computing the total price of an order:
// a base price derived from the cleaning type and property size, plus the
// subtotals of the selected add-on services.
type PriceCalculator struct{}

// NewPriceCalculator creates a new PriceCalculator instance.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// BasePrice returns the room/bathroom-derived part of the price.
func (c PriceCalculator) BasePrice(details order.Details) float64 {
	base := baseRateStandard
	if details.CleaningType() == CleaningTypeDeep {
		base = baseRateDeep
	}
	return base +
		float64(details.Rooms())*ratePerRoom +
		float64(details.Bathrooms())*ratePerBathroom
}

// Total returns the full order price: base price plus item subtotals.
func (c PriceCalculator) Total(details order.Details, items []order.Item) float64 {
	total := c.BasePrice(details)
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
