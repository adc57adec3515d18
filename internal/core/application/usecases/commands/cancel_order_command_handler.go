package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order that has not been picked up
// yet. When a shipment is booked the carrier cancellation runs first; on
// carrier success the reserved stock is released, the discount usage is
// reversed once and the order transitions to cancelled.
type CancelOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	carrier    ports.CarrierGateway
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory FulfillmentUoWFactory, carrier ports.CarrierGateway) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		carrier:    carrier,
	}
}

// Handle processes the cancel command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := loadOrder(ctx, h.uowFactory, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = aggregate.Status().ValidateMutable("cancel"); err != nil {
		return err
	}

	if aggregate.HasShipment() {
		if err = h.carrier.CancelShipment(ctx, aggregate.ShipmentCode()); err != nil {
			return err
		}
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	return inTx(ctx, h.uowFactory, func(uow FulfillmentUoW) error {
		return unwindOrder(ctx, uow, aggregate)
	})
}

// unwindOrder persists a cancelled or returned order and hands back what
// it held: stock goes back per item and the discount usage drops by one
// when a code was applied.
func unwindOrder(ctx context.Context, uow FulfillmentUoW, aggregate *order.Order) error {
	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	for _, item := range aggregate.Items() {
		if err := uow.ProductRepository().AdjustStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return err
		}
	}
	if aggregate.HasDiscount() {
		if err := uow.DiscountRepository().AdjustUsage(ctx, aggregate.DiscountCode(), -1); err != nil {
			return err
		}
	}
	return nil
}
