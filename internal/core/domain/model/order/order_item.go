package order

import (
	"store/internal/core/domain/model/product"
	"store/internal/pkg/notifications"

	"github.com/shopspring/decimal"
)

// OrderItem binds a product and a quantity inside an order. The unit price
// is snapshotted from the product at construction, so later catalog price
// changes do not affect existing orders.
//
// Items are owned by their Order: they are created through Order.AddItem
// (or restored from persistence) and never shared between aggregates.
type OrderItem struct {
	notifications.Notifiable

	product  *product.Product
	price    decimal.Decimal
	quantity int
}

// NewItem constructs a candidate OrderItem. A nil product or non-positive
// quantity records a notification; the item is still returned, and it is the
// containing order's responsibility to refuse invalid items.
func NewItem(p *product.Product, quantity int) *OrderItem {
	item := &OrderItem{
		product:  p,
		quantity: quantity,
	}

	if p == nil {
		item.AddNotification("OrderItem.Product", "product is required")
		item.price = decimal.Zero
	} else {
		item.price = p.Price()
	}
	if quantity <= 0 {
		item.AddNotification("OrderItem.Quantity", "quantity must be greater than zero")
	}

	return item
}

// RestoreItem reconstructs an item from persistence with its snapshotted
// price. No validation is re-run; the row was validated when written.
func RestoreItem(p *product.Product, price decimal.Decimal, quantity int) *OrderItem {
	return &OrderItem{
		product:  p,
		price:    price,
		quantity: quantity,
	}
}

// Product returns the referenced product. Nil only for items that failed
// validation and were never added to an order.
func (i *OrderItem) Product() *product.Product {
	return i.product
}

// Price returns the unit price snapshotted at construction.
func (i *OrderItem) Price() decimal.Decimal {
	return i.price
}

// Quantity returns the ordered quantity.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// Total returns price multiplied by quantity.
func (i *OrderItem) Total() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}
