package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// EditOrderCommandHandler changes an order's recipient and destination.
// Edits are permitted only before the carrier picks the parcel up. When
// the order has a booked shipment the change is pushed upstream first;
// the local record mutates only after the carrier accepts, so the two
// never diverge.
type EditOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	carrier    ports.CarrierGateway
}

// NewEditOrderCommandHandler creates a handler for order edits.
func NewEditOrderCommandHandler(uowFactory FulfillmentUoWFactory, carrier ports.CarrierGateway) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		carrier:    carrier,
	}
}

// Handle processes the edit command.
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := loadOrder(ctx, h.uowFactory, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = aggregate.Status().ValidateMutable("edit"); err != nil {
		return err
	}

	destination := cmd.Destination()
	current := aggregate.Destination()
	if destination.DistrictID() != current.DistrictID() ||
		destination.WardCode() != current.WardCode() ||
		destination.ProvinceID() != current.ProvinceID() {
		if err = h.carrier.ValidateDestination(ctx,
			destination.DistrictID(), destination.ProvinceID(), destination.WardCode()); err != nil {
			return err
		}
	}

	if aggregate.HasShipment() {
		if err = h.carrier.UpdateShipment(ctx, aggregate.ShipmentCode(), ports.ShipmentUpdate{
			CustomerName:  cmd.CustomerName(),
			CustomerPhone: cmd.CustomerPhone(),
			Destination:   destination,
		}); err != nil {
			return err
		}
	}

	if err = aggregate.ChangeDestination(destination); err != nil {
		return err
	}

	return inTx(ctx, h.uowFactory, func(uow FulfillmentUoW) error {
		return uow.OrderRepository().Update(ctx, aggregate)
	})
}

// loadOrder fetches the aggregate within a short read transaction.
func loadOrder(ctx context.Context, factory FulfillmentUoWFactory, orderID string) (*order.Order, error) {
	var aggregate *order.Order
	err := inTx(ctx, factory, func(uow FulfillmentUoW) error {
		loaded, txErr := uow.OrderRepository().GetByOrderID(ctx, orderID)
		if txErr != nil {
			return txErr
		}
		aggregate = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return aggregate, nil
}

func inTx(ctx context.Context, factory FulfillmentUoWFactory, fn func(uow FulfillmentUoW) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
