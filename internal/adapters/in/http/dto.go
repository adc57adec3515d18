package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"
)

// response is the envelope every endpoint returns. Code mirrors the
// HTTP status so clients reading the body alone can still branch.
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

type itemRequestDTO struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type createOrderRequestDTO struct {
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	Address       string           `json:"address"`
	DistrictID    int              `json:"districtId"`
	WardCode      string           `json:"wardCode"`
	ProvinceID    int              `json:"provinceId"`
	ServiceID     int              `json:"serviceId"`
	Items         []itemRequestDTO `json:"items"`
	DiscountCodes []string         `json:"discountCodes"`
}

type editOrderRequestDTO struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Address       string `json:"address"`
	DistrictID    int    `json:"districtId"`
	WardCode      string `json:"wardCode"`
	ProvinceID    int    `json:"provinceId"`
}

type updateCODRequestDTO struct {
	Amount int64 `json:"amount"`
}

type updateStatusRequestDTO struct {
	Status string `json:"status"`
}

type createOrderResponseDTO struct {
	OrderID           string    `json:"orderId"`
	MerchandiseTotal  int64     `json:"merchandiseTotal"`
	ShippingFee       int64     `json:"shippingFee"`
	DiscountCode      string    `json:"discountCode,omitempty"`
	DiscountAmount    int64     `json:"discountAmount"`
	TotalAmount       int64     `json:"totalAmount"`
	ShipmentCode      string    `json:"shipmentCode"`
	EstimatedLeadTime time.Time `json:"estimatedLeadTime"`
	Status            string    `json:"status"`
}

type trackingEventDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type shipmentDetailDTO struct {
	ShipmentCode string             `json:"shipmentCode"`
	Status       string             `json:"status"`
	CODAmount    int64              `json:"codAmount"`
	Log          []trackingEventDTO `json:"log"`
}

type orderResponseDTO struct {
	OrderID           string                         `json:"orderId"`
	Items             []queries.GetOrderItemResponse `json:"items"`
	MerchandiseTotal  int64                          `json:"merchandiseTotal"`
	ShippingFee       int64                          `json:"shippingFee"`
	DiscountCode      string                         `json:"discountCode,omitempty"`
	DiscountAmount    int64                          `json:"discountAmount"`
	TotalAmount       int64                          `json:"totalAmount"`
	Address           string                         `json:"address"`
	DistrictID        int                            `json:"districtId"`
	WardCode          string                         `json:"wardCode"`
	ProvinceID        int                            `json:"provinceId"`
	ShipmentCode      string                         `json:"shipmentCode,omitempty"`
	EstimatedLeadTime time.Time                      `json:"estimatedLeadTime"`
	Status            string                         `json:"status"`
	Shipment          *shipmentDetailDTO             `json:"shipment,omitempty"`
}

func toOrderResponseDTO(model queries.GetOrderQueryResponse) orderResponseDTO {
	dto := orderResponseDTO{
		OrderID:           model.OrderID,
		Items:             model.Items,
		MerchandiseTotal:  model.MerchandiseTotal,
		ShippingFee:       model.ShippingFee,
		DiscountCode:      model.DiscountCode,
		DiscountAmount:    model.DiscountAmount,
		TotalAmount:       model.TotalAmount,
		Address:           model.Address,
		DistrictID:        model.DistrictID,
		WardCode:          model.WardCode,
		ProvinceID:        model.ProvinceID,
		ShipmentCode:      model.ShipmentCode,
		EstimatedLeadTime: model.EstimatedLeadTime,
		Status:            model.Status,
	}
	if model.Shipment != nil {
		detail := shipmentDetailDTO{
			ShipmentCode: model.Shipment.ShipmentCode,
			Status:       model.Shipment.Status.String(),
			CODAmount:    model.Shipment.CODAmount,
			Log:          make([]trackingEventDTO, 0, len(model.Shipment.Log)),
		}
		for _, event := range model.Shipment.Log {
			detail.Log = append(detail.Log, trackingEventDTO{Status: event.Status, Timestamp: event.Timestamp})
		}
		dto.Shipment = &detail
	}
	return dto
}

type promotionResponseDTO struct {
	Code              string    `json:"code"`
	Percentage        int       `json:"percentage"`
	MaxDiscountAmount int64     `json:"maxDiscountAmount"`
	MinOrderAmount    int64     `json:"minOrderAmount"`
	EndDate           time.Time `json:"endDate"`
}

// statusFor maps domain and infrastructure errors onto HTTP statuses.
// Unrecognized errors are treated as internal failures.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStatusConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStockUnavailable):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNoServiceAvailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrCarrierRejected):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
