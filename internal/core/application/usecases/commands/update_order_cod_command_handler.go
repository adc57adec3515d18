package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// UpdateOrderCODCommandHandler changes the cash-on-delivery amount of an
// order that has not been picked up yet. The amount is validated against
// the loaded order before the carrier is touched, then the carrier is
// updated first; only on carrier success is the local total recomputed,
// keeping the merchandise and discount components intact.
type UpdateOrderCODCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	carrier    ports.CarrierGateway
}

// NewUpdateOrderCODCommandHandler creates a handler for COD updates.
func NewUpdateOrderCODCommandHandler(uowFactory FulfillmentUoWFactory, carrier ports.CarrierGateway) UpdateOrderCODCommandHandler {
	return UpdateOrderCODCommandHandler{
		uowFactory: uowFactory,
		carrier:    carrier,
	}
}

// Handle processes the COD update command.
func (h *UpdateOrderCODCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCODCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := loadOrder(ctx, h.uowFactory, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = aggregate.Status().ValidateMutable("update COD"); err != nil {
		return err
	}
	if err = aggregate.ValidateCODAmount(cmd.Amount()); err != nil {
		return err
	}

	if aggregate.HasShipment() {
		if err = h.carrier.UpdateCOD(ctx, aggregate.ShipmentCode(), cmd.Amount()); err != nil {
			return err
		}
	}

	if err = aggregate.ChangeCOD(cmd.Amount()); err != nil {
		return err
	}

	return inTx(ctx, h.uowFactory, func(uow FulfillmentUoW) error {
		return uow.OrderRepository().Update(ctx, aggregate)
	})
}
