package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// NewOrderID derives the order's business key from the creation instant.
// The key is globally unique at the granularity orders are actually
// created and is immutable once assigned.
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("ORD_%d", now.UnixMilli())
}

// Order is the aggregate root of the fulfillment workflow. It owns its
// item snapshots and holds non-owning business-key references to the
// customer, products and discount.
//
// Money invariant, maintained by every mutating method:
//
//	totalAmount = merchandiseTotal + shippingFee - discountAmount, always >= 0
//
// The carrier shipment code is empty until an external booking succeeds;
// its presence signals that later cancel/edit/return/COD operations must
// reach the carrier before any local mutation.
type Order struct {
	id         kernel.UUID // storage identity
	orderID    string      // business key, immutable
	customerID kernel.UUID

	items            []Item
	merchandiseTotal int64
	shippingFee      int64
	discountCode     string // empty when no discount was applied
	discountAmount   int64
	totalAmount      int64

	destination kernel.Destination
	serviceID   int

	shipmentCode      string // empty until booked with the carrier
	estimatedLeadTime time.Time

	status Status

	guard guard.ConstructorGuard
}

// NewOrder creates an order in ReadyToPick status. The merchandise total
// is derived from the item snapshots; the total amount follows the money
// invariant. Items must be non-empty and the discount may not push the
// total below zero.
func NewOrder(
	id kernel.UUID,
	orderID string,
	customerID kernel.UUID,
	items []Item,
	shippingFee int64,
	discountCode string,
	discountAmount int64,
	destination kernel.Destination,
	serviceID int,
	estimatedLeadTime time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		destination.Validate(),
	); err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if shippingFee < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("shippingFee",
			fmt.Errorf("%d is negative", shippingFee))
	}
	if discountAmount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("discountAmount",
			fmt.Errorf("%d is negative", discountAmount))
	}
	if discountAmount > 0 && discountCode == "" {
		return nil, errs.NewValueIsRequiredError("discountCode")
	}

	var merchandiseTotal int64
	for _, item := range items {
		merchandiseTotal += item.LineTotal()
	}

	totalAmount := merchandiseTotal + shippingFee - discountAmount
	if totalAmount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("discount %d exceeds merchandise total %d plus shipping %d",
				discountAmount, merchandiseTotal, shippingFee))
	}

	return &Order{
		id:                id,
		orderID:           orderID,
		customerID:        customerID,
		items:             append([]Item(nil), items...),
		merchandiseTotal:  merchandiseTotal,
		shippingFee:       shippingFee,
		discountCode:      discountCode,
		discountAmount:    discountAmount,
		totalAmount:       totalAmount,
		destination:       destination,
		serviceID:         serviceID,
		estimatedLeadTime: estimatedLeadTime,
		status:            ReadyToPick,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder rebuilds an order from persistence. Stored monetary fields
// are trusted as-is apart from the money invariant, which is re-checked
// to catch corrupted rows early.
func RestoreOrder(
	id kernel.UUID,
	orderID string,
	customerID kernel.UUID,
	items []Item,
	merchandiseTotal int64,
	shippingFee int64,
	discountCode string,
	discountAmount int64,
	totalAmount int64,
	destination kernel.Destination,
	serviceID int,
	shipmentCode string,
	estimatedLeadTime time.Time,
	status Status,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		destination.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if totalAmount != merchandiseTotal+shippingFee-discountAmount || totalAmount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%d does not equal %d + %d - %d",
				totalAmount, merchandiseTotal, shippingFee, discountAmount))
	}

	return &Order{
		id:                id,
		orderID:           orderID,
		customerID:        customerID,
		items:             append([]Item(nil), items...),
		merchandiseTotal:  merchandiseTotal,
		shippingFee:       shippingFee,
		discountCode:      discountCode,
		discountAmount:    discountAmount,
		totalAmount:       totalAmount,
		destination:       destination,
		serviceID:         serviceID,
		shipmentCode:      shipmentCode,
		estimatedLeadTime: estimatedLeadTime,
		status:            status,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the storage identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderID returns the immutable business key.
func (o *Order) OrderID() string {
	return o.orderID
}

// CustomerID returns the referenced customer's identity.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// MerchandiseTotal returns the sum of the item line totals.
func (o *Order) MerchandiseTotal() int64 {
	return o.merchandiseTotal
}

// ShippingFee returns the carrier-quoted shipping fee.
func (o *Order) ShippingFee() int64 {
	return o.shippingFee
}

// DiscountCode returns the applied discount code, empty if none.
func (o *Order) DiscountCode() string {
	return o.discountCode
}

// HasDiscount reports whether a discount was applied to this order.
func (o *Order) HasDiscount() bool {
	return o.discountCode != "" && o.discountAmount > 0
}

// DiscountAmount returns the applied discount amount.
func (o *Order) DiscountAmount() int64 {
	return o.discountAmount
}

// TotalAmount returns the amount the carrier collects on delivery.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// Destination returns the delivery destination.
func (o *Order) Destination() kernel.Destination {
	return o.destination
}

// ServiceID returns the carrier service the order was quoted with.
func (o *Order) ServiceID() int {
	return o.serviceID
}

// ShipmentCode returns the carrier's shipment identifier, empty until booked.
func (o *Order) ShipmentCode() string {
	return o.shipmentCode
}

// HasShipment reports whether the order is booked with the carrier.
func (o *Order) HasShipment() bool {
	return o.shipmentCode != ""
}

// EstimatedLeadTime returns the carrier-quoted delivery timestamp.
func (o *Order) EstimatedLeadTime() time.Time {
	return o.estimatedLeadTime
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// AttachShipment records a successful carrier booking. An order can be
// booked at most once.
func (o *Order) AttachShipment(shipmentCode string, estimatedLeadTime time.Time) error {
	if shipmentCode == "" {
		return errs.NewValueIsRequiredError("shipmentCode")
	}
	if o.shipmentCode != "" {
		return errs.NewValueIsInvalidErrorWithCause("shipmentCode",
			fmt.Errorf("order %s is already booked as %s", o.orderID, o.shipmentCode))
	}
	o.shipmentCode = shipmentCode
	o.estimatedLeadTime = estimatedLeadTime
	return nil
}

// ChangeDestination replaces the delivery destination. Permitted only
// while the carrier has not collected the parcel. Carrier-side
// revalidation of the new district/ward is the workflow's concern.
func (o *Order) ChangeDestination(destination kernel.Destination) error {
	if err := o.status.ValidateMutable("edit"); err != nil {
		return err
	}
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

// Cancel transitions the order to Cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Return transitions the order to Returning.
func (o *Order) Return() error {
	newStatus, err := o.status.Return()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ValidateCODAmount checks that a collect-on-delivery amount could
// replace the current one without mutating the order. The amount may
// not undercut merchandise minus discount, which would require a
// negative shipping fee.
func (o *Order) ValidateCODAmount(newAmount int64) error {
	if newAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("codAmount",
			fmt.Errorf("%d is negative", newAmount))
	}
	if newAmount-o.merchandiseTotal+o.discountAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("codAmount",
			fmt.Errorf("%d is below merchandise total %d minus discount %d",
				newAmount, o.merchandiseTotal, o.discountAmount))
	}
	return nil
}

// ChangeCOD replaces the collect-on-delivery amount. The merchandise and
// discount components are preserved; the shipping-derived component is
// recomputed so the money invariant keeps holding.
func (o *Order) ChangeCOD(newAmount int64) error {
	if err := o.status.ValidateMutable("updateCOD"); err != nil {
		return err
	}
	if err := o.ValidateCODAmount(newAmount); err != nil {
		return err
	}
	o.shippingFee = newAmount - o.merchandiseTotal + o.discountAmount
	o.totalAmount = newAmount
	return nil
}

// SetStatus applies a carrier-reported status unconditionally. Used for
// webhook/poll-driven propagation; only the value itself is validated.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
