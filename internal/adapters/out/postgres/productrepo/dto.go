// Package productrepo persists the product catalog and maps rows to the
// domain Product entity.
package productrepo

import (
	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Price  decimal.Decimal
	Active bool `gorm:"index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:     p.ID().Bytes(),
		Name:   p.Name(),
		Price:  p.Price(),
		Active: p.Active(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.New(id, dto.Name, dto.Price, dto.Active), nil
}
