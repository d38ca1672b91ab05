// Package order provides domain entities and business logic for cleaning order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root managing identity, pricing, assignment and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Details: The customer-supplied description of the cleaning job
//   - Item: An add-on service line with quantity and unit price
//
// Key business rules:
//   - Orders start pending with no cleaner and at least one service item
//   - A cleaner is assigned if and only if the order is not pending
//   - Cleaners advance status strictly one step at a time:
//     pending -> accepted -> going -> started -> finished
//   - Paid is reachable only through an administrative update
//   - Administrators may set any enumerated status and reassign cleaners
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
