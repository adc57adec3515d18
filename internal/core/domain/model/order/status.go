package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Values mirror the
// carrier's shipment states so that webhook/poll updates can be applied
// without translation, and round-trip through persistence as strings.
//
// Main line:
//
//	ready_to_pick -> picking -> picked -> storing -> transporting
//	              -> sorting -> delivering -> delivered
//
// Side branches:
//
//	{ready_to_pick, picking} -> cancel
//	{delivering, delivered}  -> return -> returned
//
// Anomaly states lost and damage are terminal and only ever set by
// carrier-driven status propagation.
type Status string

const (
	// ReadyToPick is the initial status of every order.
	ReadyToPick  Status = "ready_to_pick"
	Picking      Status = "picking"
	Picked       Status = "picked"
	Storing      Status = "storing"
	Transporting Status = "transporting"
	Sorting      Status = "sorting"
	Delivering   Status = "delivering"
	Delivered    Status = "delivered"

	// Cancelled terminates an order before the carrier picked it up.
	Cancelled Status = "cancel"
	// Returning marks an order handed back to the carrier for return.
	Returning Status = "return"
	Returned  Status = "returned"

	// Lost and Damaged are terminal anomaly states reported by the carrier.
	Lost    Status = "lost"
	Damaged Status = "damage"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		ReadyToPick:  {},
		Picking:      {},
		Picked:       {},
		Storing:      {},
		Transporting: {},
		Sorting:      {},
		Delivering:   {},
		Delivered:    {},
		Cancelled:    {},
		Returning:    {},
		Returned:     {},
		Lost:         {},
		Damaged:      {},
	}
}

// Validate checks that the status is one of the enumerated values.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String returns the persisted representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are expected.
func (s Status) IsTerminal() bool {
	switch s {
	case Cancelled, Returned, Lost, Damaged:
		return true
	default:
		return false
	}
}

// ValidateMutable checks that the order may still be edited, cancelled or
// have its COD amount changed. All three operations share the same
// permitted set: the carrier has not collected the parcel yet.
func (s Status) ValidateMutable(operation string) error {
	if s != ReadyToPick && s != Picking {
		return errs.NewStatusConflictError(operation, string(s))
	}
	return nil
}

// ValidateReturnable checks that the order may be sent back to the
// carrier for return: it is on its way to the recipient or already
// handed over.
func (s Status) ValidateReturnable() error {
	if s != Delivering && s != Delivered {
		return errs.NewStatusConflictError("return", string(s))
	}
	return nil
}

// Cancel transitions the status to Cancelled.
// Permitted only from ReadyToPick or Picking.
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateMutable("cancel"); err != nil {
		return "", err
	}
	return Cancelled, nil
}

// Return transitions the status to Returning.
// Permitted only from Delivering or Delivered.
func (s Status) Return() (Status, error) {
	if err := s.ValidateReturnable(); err != nil {
		return "", err
	}
	return Returning, nil
}
