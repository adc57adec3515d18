package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// SyncShipmentStatusesCommandHandler polls the carrier for every booked
// order still in flight and propagates reported status changes to the
// local records. A failed poll for one order is logged and skipped; the
// pass continues with the rest.
type SyncShipmentStatusesCommandHandler struct {
	uowFactory OrderUoWFactory
	carrier    ports.CarrierGateway
	logger     *slog.Logger
}

// NewSyncShipmentStatusesCommandHandler creates a handler for shipment polling.
func NewSyncShipmentStatusesCommandHandler(
	uowFactory OrderUoWFactory,
	carrier ports.CarrierGateway,
	logger *slog.Logger,
) SyncShipmentStatusesCommandHandler {
	return SyncShipmentStatusesCommandHandler{
		uowFactory: uowFactory,
		carrier:    carrier,
		logger:     logger.With("component", "sync_shipment_statuses"),
	}
}

// trackedStatuses are the statuses a booked shipment can still move out
// of. Terminal orders are never polled again.
func trackedStatuses() []order.Status {
	return []order.Status{
		order.ReadyToPick,
		order.Picking,
		order.Picked,
		order.Storing,
		order.Transporting,
		order.Sorting,
		order.Delivering,
		order.Delivered,
		order.Returning,
	}
}

// Handle runs one polling pass. Carrier calls happen outside any
// transaction; each status change is written through its own unit of
// work so one failed write does not discard the rest.
func (h *SyncShipmentStatusesCommandHandler) Handle(ctx context.Context, cmd SyncShipmentStatusesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	candidates, err := h.loadCandidates(ctx)
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		detail, err := h.carrier.GetShipmentDetail(ctx, candidate.ShipmentCode())
		if err != nil {
			h.logger.WarnContext(ctx, "shipment poll failed",
				"orderId", candidate.OrderID(),
				"shipmentCode", candidate.ShipmentCode(),
				"error", err)
			continue
		}

		if detail.Status == candidate.Status() {
			continue
		}

		if err := h.writeStatus(ctx, candidate.OrderID(), detail.Status); err != nil {
			h.logger.ErrorContext(ctx, "status propagation failed",
				"orderId", candidate.OrderID(),
				"status", detail.Status,
				"error", err)
			continue
		}

		h.logger.InfoContext(ctx, "order status synced",
			"orderId", candidate.OrderID(),
			"from", candidate.Status(),
			"to", detail.Status)
	}

	return nil
}

func (h *SyncShipmentStatusesCommandHandler) loadCandidates(ctx context.Context) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	candidates, err := uow.OrderRepository().GetAllWithShipmentInStatus(ctx, trackedStatuses())
	if err != nil {
		return nil, err
	}

	return candidates, uow.Commit(ctx)
}

func (h *SyncShipmentStatusesCommandHandler) writeStatus(ctx context.Context, orderID string, status order.Status) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
