// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - DeliveryPersonSelector: picks the best delivery person for an order
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root; they are stateless and safe for concurrent use.
package services
