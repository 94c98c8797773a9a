// Package customerrepo persists customer records and maps them to the
// domain Customer entity.
package customerrepo

import (
	"store/internal/core/domain/model/customer"
	"store/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customer records.
type CustomerDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Document string    `gorm:"type:varchar(11);uniqueIndex"`
	Name     string
	Email    string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:       c.ID().Bytes(),
		Document: c.Document(),
		Name:     c.Name(),
		Email:    c.Email(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.New(id, dto.Document, dto.Name, dto.Email), nil
}
