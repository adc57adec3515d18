package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler loads an order row and, when a shipment code is
// present, merges in the carrier's live detail. The carrier fetch is
// best effort: an upstream failure is logged and the response degrades
// to local data instead of failing the read.
type GetOrderQueryHandler struct {
	db      *gorm.DB
	carrier ports.CarrierGateway
	logger  *slog.Logger
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB, carrier ports.CarrierGateway, logger *slog.Logger) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:      db,
		carrier: carrier,
		logger:  logger,
	}
}

// Handle executes the order lookup.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		resp         GetOrderQueryResponse
		itemsJSON    []byte
		discountCode sql.NullString
		shipmentCode sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			items,
			merchandise_total,
			shipping_fee,
			discount_code,
			discount_amount,
			total_amount,
			address,
			district_id,
			ward_code,
			province_id,
			shipment_code,
			estimated_lead_time,
			status
		FROM orders
		WHERE order_id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&resp.OrderID,
		&itemsJSON,
		&resp.MerchandiseTotal,
		&resp.ShippingFee,
		&discountCode,
		&resp.DiscountAmount,
		&resp.TotalAmount,
		&resp.Address,
		&resp.DistrictID,
		&resp.WardCode,
		&resp.ProvinceID,
		&shipmentCode,
		&resp.EstimatedLeadTime,
		&resp.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err = json.Unmarshal(itemsJSON, &resp.Items); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.DiscountCode = discountCode.String
	resp.ShipmentCode = shipmentCode.String

	if resp.ShipmentCode != "" {
		detail, detailErr := h.carrier.GetShipmentDetail(ctx, resp.ShipmentCode)
		if detailErr != nil {
			h.logger.WarnContext(ctx, "shipment detail unavailable, returning local data",
				"orderId", resp.OrderID,
				"shipmentCode", resp.ShipmentCode,
				"error", detailErr)
		} else {
			resp.Shipment = &detail
		}
	}

	return resp, nil
}
