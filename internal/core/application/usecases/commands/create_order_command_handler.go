package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/saga"
)

// CreateOrderResult is the summary returned to the caller after a
// successful creation.
type CreateOrderResult struct {
	OrderID           string
	MerchandiseTotal  int64
	ShippingFee       int64
	DiscountCode      string
	DiscountAmount    int64
	TotalAmount       int64
	ShipmentCode      string
	EstimatedLeadTime time.Time
	Status            order.Status
}

// CreateOrderCommandHandler runs the order creation pipeline: customer
// resolution, product snapshots, availability, carrier route validation
// and quoting, discount selection, then persist-and-book.
//
// The persist-and-book tail runs as a compensated sequence: the local
// order is persisted first, then the shipment is booked. A booking
// failure deletes the just-persisted order and surfaces the carrier's
// reason; stock and discount usage are only touched after the booking
// succeeds, so a failed creation mutates neither.
type CreateOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	carrier    ports.CarrierGateway
	saga       *saga.Runner
	checker    services.AvailabilityChecker
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	carrier ports.CarrierGateway,
	sagaRunner *saga.Runner,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		carrier:    carrier,
		saga:       sagaRunner,
		checker:    services.NewAvailabilityChecker(),
	}
}

// Handle processes the order creation command. Stages short-circuit on
// the first failure; nothing before persist-and-book mutates order,
// stock or discount state, so aborting is free of cleanup.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	customerID, items, discountCode, discountAmount, err := h.prepare(ctx, cmd)
	if err != nil {
		return CreateOrderResult{}, err
	}

	origin, err := h.carrier.ResolveOriginProfile(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}
	destination := cmd.Destination()
	if err = h.carrier.ValidateDestination(ctx,
		destination.DistrictID(), destination.ProvinceID(), destination.WardCode()); err != nil {
		return CreateOrderResult{}, err
	}
	serviceID, err := h.carrier.ResolveServiceID(ctx,
		origin.DistrictID, destination.DistrictID(), cmd.RequestedServiceID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	shipmentItems := toShipmentItems(items)
	shippingFee, err := h.carrier.QuoteFee(ctx, origin, destination, serviceID, shipmentItems)
	if err != nil {
		return CreateOrderResult{}, err
	}
	leadTime, err := h.carrier.QuoteLeadTime(ctx, origin, destination, serviceID)
	if err != nil {
		return CreateOrderResult{}, err
	}

	now := time.Now()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), order.NewOrderID(now), customerID, items,
		shippingFee, discountCode, discountAmount, destination, serviceID, leadTime,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	var shipmentCode string
	steps := []saga.Step{
		{
			Name: "persist order",
			Run: func(ctx context.Context) error {
				return inTx(ctx, h.uowFactory, func(uow FulfillmentUoW) error {
					return uow.OrderRepository().Add(ctx, aggregate)
				})
			},
			Compensate: func(ctx context.Context) error {
				return inTx(ctx, h.uowFactory, func(uow FulfillmentUoW) error {
					return uow.OrderRepository().Delete(ctx, aggregate.OrderID())
				})
			},
		},
		{
			Name: "book shipment",
			Run: func(ctx context.Context) error {
				code, bookErr := h.carrier.CreateShipment(ctx, ports.ShipmentRequest{
					OrderID:       aggregate.OrderID(),
					CustomerName:  cmd.CustomerName(),
					CustomerPhone: cmd.CustomerPhone(),
					Destination:   destination,
					ServiceID:     serviceID,
					CODAmount:     aggregate.TotalAmount(),
					Items:         shipmentItems,
				})
				if bookErr != nil {
					return bookErr
				}
				shipmentCode = code
				return nil
			},
		},
	}
	if err = h.saga.Execute(ctx, steps); err != nil {
		return CreateOrderResult{}, err
	}

	// Booking succeeded; the order is never deleted past this point.
	// The shipment code is committed on its own so the order references
	// the confirmed booking even if the adjustments after it fail.
	if err = aggregate.AttachShipment(shipmentCode, leadTime); err != nil {
		return CreateOrderResult{}, err
	}
	if err = inTx(ctx, h.uowFactory, func(uow FulfillmentUoW) error {
		return uow.OrderRepository().Update(ctx, aggregate)
	}); err != nil {
		return CreateOrderResult{}, err
	}
	if err = inTx(ctx, h.uowFactory, func(uow FulfillmentUoW) error {
		for _, item := range aggregate.Items() {
			if txErr := uow.ProductRepository().AdjustStock(ctx, item.ProductID(), -item.Quantity()); txErr != nil {
				return txErr
			}
		}
		if aggregate.HasDiscount() {
			if txErr := uow.DiscountRepository().AdjustUsage(ctx, aggregate.DiscountCode(), 1); txErr != nil {
				return txErr
			}
		}
		return nil
	}); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:           aggregate.OrderID(),
		MerchandiseTotal:  aggregate.MerchandiseTotal(),
		ShippingFee:       aggregate.ShippingFee(),
		DiscountCode:      aggregate.DiscountCode(),
		DiscountAmount:    aggregate.DiscountAmount(),
		TotalAmount:       aggregate.TotalAmount(),
		ShipmentCode:      aggregate.ShipmentCode(),
		EstimatedLeadTime: aggregate.EstimatedLeadTime(),
		Status:            aggregate.Status(),
	}, nil
}

// prepare runs the read phase: resolve or create the customer, snapshot
// the products, gate on availability and pick at most one discount. The
// customer upsert is the only write and is committed here.
func (h *CreateOrderCommandHandler) prepare(
	ctx context.Context, cmd CreateOrderCommand,
) (kernel.UUID, []order.Item, string, int64, error) {
	var (
		customerID     kernel.UUID
		items          []order.Item
		total          int64
		discountCode   string
		discountAmount int64
	)

	err := inTx(ctx, h.uowFactory, func(uow FulfillmentUoW) error {
		existing, txErr := uow.CustomerRepository().GetByPhone(ctx, cmd.CustomerPhone())
		switch {
		case txErr == nil:
			customerID = existing.ID()
		case errors.Is(txErr, errs.ErrObjectNotFound):
			created, newErr := customer.NewCustomer(
				kernel.NewUUID(), cmd.CustomerName(), cmd.CustomerPhone(), cmd.Destination().Address())
			if newErr != nil {
				return newErr
			}
			if newErr = uow.CustomerRepository().Add(ctx, created); newErr != nil {
				return newErr
			}
			customerID = created.ID()
		default:
			return txErr
		}

		ids := make([]kernel.UUID, 0, len(cmd.Items()))
		for _, line := range cmd.Items() {
			ids = append(ids, line.ProductID)
		}
		products, txErr := uow.ProductRepository().GetBatch(ctx, ids)
		if txErr != nil {
			return txErr
		}

		requests := make([]services.Request, 0, len(products))
		for i, p := range products {
			requests = append(requests, services.Request{Product: p, Quantity: cmd.Items()[i].Quantity})
		}
		if _, txErr = h.checker.CheckBasket(requests); txErr != nil {
			return txErr
		}

		items = make([]order.Item, 0, len(products))
		for i, p := range products {
			item, itemErr := order.NewItem(p.ID(), p.Name(), cmd.Items()[i].Quantity, p.Price())
			if itemErr != nil {
				return itemErr
			}
			items = append(items, item)
			total += item.LineTotal()
		}

		discountCode, discountAmount = h.pickDiscount(ctx, uow, cmd.DiscountCodes(), total)
		return nil
	})
	if err != nil {
		return kernel.UUID{}, nil, "", 0, err
	}

	return customerID, items, discountCode, discountAmount, nil
}

// pickDiscount applies at most one code: the first candidate that exists
// and is eligible wins, the rest are ignored. An unknown or ineligible
// code is not an error.
func (h *CreateOrderCommandHandler) pickDiscount(
	ctx context.Context, uow FulfillmentUoW, candidates []string, orderAmount int64,
) (string, int64) {
	now := time.Now()
	for _, code := range candidates {
		d, err := uow.DiscountRepository().GetByCode(ctx, code)
		if err != nil {
			continue
		}
		if d.Eligibility(orderAmount, now) != nil {
			continue
		}
		return d.Code(), d.AmountFor(orderAmount)
	}
	return "", 0
}

func toShipmentItems(items []order.Item) []ports.ShipmentItem {
	out := make([]ports.ShipmentItem, 0, len(items))
	for _, item := range items {
		out = append(out, ports.ShipmentItem{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.UnitPrice(),
		})
	}
	return out
}
