// Package order provides the Order aggregate root of the fulfillment
// workflow: item snapshots, money totals, the delivery destination, the
// carrier booking and the lifecycle state machine.
//
// Key business rules:
//   - totalAmount = merchandiseTotal + shippingFee - discountAmount, never negative
//   - Item name and unit price are frozen at creation and never recomputed
//   - Orders start in ready_to_pick; edit, cancel and COD changes are only
//     permitted in ready_to_pick or picking; return only in delivering or delivered
//   - A shipment code is attached at most once; its presence means the
//     carrier must confirm any further mutation before local state changes
//
// The package follows Domain-Driven Design principles: private fields,
// validating constructors and Restore functions for persistence.
package order
