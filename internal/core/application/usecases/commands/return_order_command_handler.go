package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// ReturnOrderCommandHandler sends an order back once it is out for
// delivery or delivered. Mirrors cancellation: the carrier return runs
// first, then stock and discount usage are handed back and the order
// transitions to returning.
type ReturnOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	carrier    ports.CarrierGateway
}

// NewReturnOrderCommandHandler creates a handler for order returns.
func NewReturnOrderCommandHandler(uowFactory FulfillmentUoWFactory, carrier ports.CarrierGateway) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
		carrier:    carrier,
	}
}

// Handle processes the return command.
func (h *ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := loadOrder(ctx, h.uowFactory, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = aggregate.Status().ValidateReturnable(); err != nil {
		return err
	}

	if aggregate.HasShipment() {
		if err = h.carrier.ReturnShipment(ctx, aggregate.ShipmentCode()); err != nil {
			return err
		}
	}

	if err = aggregate.Return(); err != nil {
		return err
	}

	return inTx(ctx, h.uowFactory, func(uow FulfillmentUoW) error {
		return unwindOrder(ctx, uow, aggregate)
	})
}
