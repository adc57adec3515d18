// Package customerrepo persists customer records, keyed by phone number
// at the lookup level.
package customerrepo

import (
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Phone   string `gorm:"uniqueIndex"`
	Address string
}

// TableName overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer entity to its database representation.
func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID().Bytes(),
		Name:    c.Name(),
		Phone:   c.Phone(),
		Address: c.Address(),
	}
}

// toDomain converts a database row back into a customer entity.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.Name, dto.Phone, dto.Address)
}
