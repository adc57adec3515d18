// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the fulfillment system. It implements
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - AvailabilityChecker: a domain service producing stock verdicts for
//     a requested basket of products
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
