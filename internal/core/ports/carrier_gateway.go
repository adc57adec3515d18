package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OriginProfile is the shop/warehouse address shipments originate from.
type OriginProfile struct {
	ShopID     int
	Name       string
	Phone      string
	Address    string
	DistrictID int
	WardCode   string
}

// ShipmentItem is one order line in the shape the carrier expects.
type ShipmentItem struct {
	Name     string
	Quantity int
	Price    int64
}

// ShipmentRequest is the booking payload built from a persisted order.
// CODAmount carries the order total; the carrier collects it on delivery.
type ShipmentRequest struct {
	OrderID       string
	CustomerName  string
	CustomerPhone string
	Destination   kernel.Destination
	ServiceID     int
	CODAmount     int64
	Items         []ShipmentItem
}

// ShipmentUpdate carries the destination fields an edit pushes upstream.
type ShipmentUpdate struct {
	CustomerName  string
	CustomerPhone string
	Destination   kernel.Destination
}

// TrackingEvent is one entry of a shipment's tracking log.
type TrackingEvent struct {
	Status    string
	Timestamp time.Time
}

// ShipmentDetail is the live carrier view of a booked shipment.
type ShipmentDetail struct {
	ShipmentCode string
	Status       order.Status
	CODAmount    int64
	Log          []TrackingEvent
}

// CarrierGateway is a stateless client abstraction over the external
// shipping provider. Every operation is a single outbound call; the
// gateway performs no retries, and upstream failures surface as
// CarrierRejectedError. Retry and timeout policy belong to the caller.
type CarrierGateway interface {
	// ResolveOriginProfile returns the configured shipment origin.
	ResolveOriginProfile(ctx context.Context) (OriginProfile, error)

	// ValidateDestination checks that the district exists under the
	// province and the ward exists under the district. The two lookups
	// are independent and the destination is rejected if either fails.
	ValidateDestination(ctx context.Context, districtID, provinceID int, wardCode string) error

	// ResolveServiceID validates a caller-supplied service against the
	// route, or picks the route's default when the requested id is zero.
	// Fails with NoServiceAvailableError when the route offers nothing
	// suitable.
	ResolveServiceID(ctx context.Context, fromDistrict, toDistrict, requestedServiceID int) (int, error)

	// QuoteFee returns the shipping fee for the route and items.
	QuoteFee(ctx context.Context, origin OriginProfile, destination kernel.Destination, serviceID int, items []ShipmentItem) (int64, error)

	// QuoteLeadTime returns the estimated delivery timestamp.
	QuoteLeadTime(ctx context.Context, origin OriginProfile, destination kernel.Destination, serviceID int) (time.Time, error)

	// CreateShipment books a shipment and returns its code.
	CreateShipment(ctx context.Context, req ShipmentRequest) (string, error)

	// UpdateShipment pushes changed recipient/destination fields upstream.
	UpdateShipment(ctx context.Context, shipmentCode string, update ShipmentUpdate) error

	// CancelShipment cancels a booked shipment.
	CancelShipment(ctx context.Context, shipmentCode string) error

	// ReturnShipment requests a return for a booked shipment.
	ReturnShipment(ctx context.Context, shipmentCode string) error

	// UpdateCOD changes the cash-on-delivery amount of a booked shipment.
	UpdateCOD(ctx context.Context, shipmentCode string, amount int64) error

	// GetShipmentDetail fetches the live status and tracking log.
	GetShipmentDetail(ctx context.Context, shipmentCode string) (ShipmentDetail, error)
}
