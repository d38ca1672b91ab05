// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the cleaning system. It implements business
// rules that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ClaimPolicy: A domain service enforcing the one-active-order-per-cleaner rule
//   - PriceCalculator: A domain service computing order prices from details and items
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
