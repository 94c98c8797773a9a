// Package product provides the Product entity and the catalog predicates
// used to filter products by availability.
package product

import (
	"store/internal/core/domain/model/kernel"
	"store/internal/pkg/notifications"

	"github.com/shopspring/decimal"
)

// Product is a catalog item with a name, a non-negative price and an active
// flag. It is an immutable value once constructed; orders snapshot its price
// at the time an item is added.
type Product struct {
	notifications.Notifiable

	id     kernel.UUID
	name   string
	price  decimal.Decimal
	active bool
}

// New constructs a Product and records a notification for every broken
// invariant (empty name, negative price). The product is always returned.
func New(id kernel.UUID, name string, price decimal.Decimal, active bool) *Product {
	p := &Product{
		id:     id,
		name:   name,
		price:  price,
		active: active,
	}

	if p.name == "" {
		p.AddNotification("Product.Name", "name is required")
	}
	if p.price.IsNegative() {
		p.AddNotification("Product.Price", "price cannot be negative")
	}

	return p
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Active reports whether the product is available for sale.
func (p *Product) Active() bool {
	return p.active
}
