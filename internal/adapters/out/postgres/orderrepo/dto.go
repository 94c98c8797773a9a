// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
//
// Orders are stored denormalized: the customer and discount are snapshotted
// into the order row, and each item row snapshots its product. An order read
// back reflects the world as it was when the order was placed, regardless of
// later catalog or customer changes.
package orderrepo

import (
	"time"

	"store/internal/core/domain/model/customer"
	"store/internal/core/domain/model/discount"
	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/order"
	"store/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and age.
type OrderDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Number      string      `gorm:"type:varchar(8);uniqueIndex"`
	Customer    CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	DeliveryFee decimal.Decimal
	Discount    *DiscountDTO `gorm:"embedded;embeddedPrefix:discount_"`
	Items       []ItemDTO    `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Status      int          `gorm:"index"`
	PaidAmount  decimal.Decimal
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO is the customer snapshot embedded in the order row.
type CustomerDTO struct {
	ID       uuid.UUID `gorm:"type:uuid"`
	Document string    `gorm:"type:varchar(11)"`
	Name     string
	Email    string
}

// DiscountDTO is the discount snapshot embedded in the order row.
// Nil when the order was placed without a matching promo code.
type DiscountDTO struct {
	Amount    decimal.Decimal
	ExpiresAt time.Time
}

// ItemDTO represents one order line with its product snapshot.
type ItemDTO struct {
	ID           uint      `gorm:"primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	ProductID    uuid.UUID `gorm:"type:uuid"`
	ProductName  string
	ProductPrice decimal.Decimal
	Price        decimal.Decimal
	Quantity     int
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Snapshots the customer, discount and every item's product into the rows.
func fromDomain(o *order.Order) OrderDTO {
	c := o.Customer()

	var discountDTO *DiscountDTO
	if d := o.Discount(); d != nil {
		discountDTO = &DiscountDTO{
			Amount:    d.Amount(),
			ExpiresAt: d.ExpiresAt(),
		}
	}

	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		p := item.Product()
		items = append(items, ItemDTO{
			OrderID:      o.ID().Bytes(),
			ProductID:    p.ID().Bytes(),
			ProductName:  p.Name(),
			ProductPrice: p.Price(),
			Price:        item.Price(),
			Quantity:     item.Quantity(),
		})
	}

	return OrderDTO{
		ID:     o.ID().Bytes(),
		Number: o.Number(),
		Customer: CustomerDTO{
			ID:       c.ID().Bytes(),
			Document: c.Document(),
			Name:     c.Name(),
			Email:    c.Email(),
		},
		DeliveryFee: o.DeliveryFee(),
		Discount:    discountDTO,
		Items:       items,
		Status:      int(o.Status()),
		PaidAmount:  o.PaidAmount(),
		CreatedAt:   o.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate from the stored snapshots using Restore.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.Customer.ID[:])
	if err != nil {
		return nil, err
	}
	c := customer.New(customerID, dto.Customer.Document, dto.Customer.Name, dto.Customer.Email)

	var d *discount.Discount
	if dto.Discount != nil {
		d = discount.New(dto.Discount.Amount, dto.Discount.ExpiresAt)
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, productErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if productErr != nil {
			return nil, productErr
		}

		p := product.New(productID, itemDTO.ProductName, itemDTO.ProductPrice, true)
		items = append(items, order.RestoreItem(p, itemDTO.Price, itemDTO.Quantity))
	}

	return order.Restore(
		id,
		dto.Number,
		c,
		dto.DeliveryFee,
		d,
		items,
		order.Status(dto.Status),
		dto.PaidAmount,
		dto.CreatedAt,
	)
}
