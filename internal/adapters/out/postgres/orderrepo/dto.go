// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
// Order items live in a single JSONB column so each order stays a single
// row and mutates atomically.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ItemDTO is one snapshot line as stored inside the items JSONB column.
type ItemDTO struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unitPrice"`
	LineTotal int64     `json:"lineTotal"`
}

// ItemsJSON stores the order lines as a JSONB document.
type ItemsJSON []ItemDTO

// Value implements driver.Valuer for JSONB storage.
func (items ItemsJSON) Value() (driver.Value, error) {
	return json.Marshal(items)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (items *ItemsJSON) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return fmt.Errorf("unsupported items column type %T", value)
	}
}

// GormDataType tells gorm which column type to migrate to.
func (ItemsJSON) GormDataType() string {
	return "jsonb"
}

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by the business order_id as well as shipment_code and status so
// the sync job's scan stays cheap.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           string    `gorm:"uniqueIndex"`
	CustomerID        uuid.UUID `gorm:"type:uuid;index"`
	Items             ItemsJSON `gorm:"type:jsonb"`
	MerchandiseTotal  int64
	ShippingFee       int64
	DiscountCode      string
	DiscountAmount    int64
	TotalAmount       int64
	Address           string
	DistrictID        int
	WardCode          string
	ProvinceID        int
	ServiceID         int
	ShipmentCode      string `gorm:"index"`
	EstimatedLeadTime time.Time
	Status            string `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make(ItemsJSON, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			LineTotal: item.LineTotal(),
		})
	}

	destination := aggregate.Destination()
	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		Items:             items,
		MerchandiseTotal:  aggregate.MerchandiseTotal(),
		ShippingFee:       aggregate.ShippingFee(),
		DiscountCode:      aggregate.DiscountCode(),
		DiscountAmount:    aggregate.DiscountAmount(),
		TotalAmount:       aggregate.TotalAmount(),
		Address:           destination.Address(),
		DistrictID:        destination.DistrictID(),
		WardCode:          destination.WardCode(),
		ProvinceID:        destination.ProvinceID(),
		ServiceID:         aggregate.ServiceID(),
		ShipmentCode:      aggregate.ShipmentCode(),
		EstimatedLeadTime: aggregate.EstimatedLeadTime(),
		Status:            aggregate.Status().String(),
	}
}

// toDomain converts a database row back into an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(item.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, order.RestoreItem(
			productID, item.Name, item.Quantity, item.UnitPrice, item.LineTotal))
	}

	destination, err := kernel.NewDestination(dto.Address, dto.DistrictID, dto.WardCode, dto.ProvinceID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, dto.OrderID, customerID, items,
		dto.MerchandiseTotal, dto.ShippingFee, dto.DiscountCode, dto.DiscountAmount, dto.TotalAmount,
		destination, dto.ServiceID, dto.ShipmentCode, dto.EstimatedLeadTime, order.Status(dto.Status),
	)
}
