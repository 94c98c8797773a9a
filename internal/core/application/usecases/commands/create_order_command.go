package commands

import (
	"errors"

	"store/internal/core/domain/model/kernel"
	"store/internal/pkg/guard"
	"store/internal/pkg/notifications"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

const (
	customerDocumentLength = 11
	zipCodeLength          = 8
)

// CreateOrderItemCommand is one requested order line: a product identifier
// and a quantity. No validation happens at the command level; the Order
// aggregate decides whether the line is acceptable.
type CreateOrderItemCommand struct {
	productID kernel.UUID
	quantity  int
}

// NewCreateOrderItemCommand creates a request line for the given product
// and quantity.
func NewCreateOrderItemCommand(productID kernel.UUID, quantity int) CreateOrderItemCommand {
	return CreateOrderItemCommand{
		productID: productID,
		quantity:  quantity,
	}
}

// ProductID returns the requested product identifier.
func (c CreateOrderItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the requested quantity.
func (c CreateOrderItemCommand) Quantity() int {
	return c.quantity
}

// CreateOrderCommand represents a request to place a new order. Structural
// validation is notification based: Validate records every malformed field
// on the command itself instead of failing on the first one.
//
// Example:
//
//	cmd := NewCreateOrderCommand("12345678911", "11123456", "PROMO123", items)
//	if cmd.Validate() {
//	    return cmd.Notifications()
//	}
type CreateOrderCommand struct {
	notifications.Notifiable

	customer  string
	zipCode   string
	promoCode string
	items     []CreateOrderItemCommand

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. The
// constructor never fails; malformed fields surface through Validate.
func NewCreateOrderCommand(customer, zipCode, promoCode string, items []CreateOrderItemCommand) *CreateOrderCommand {
	return &CreateOrderCommand{
		customer:  customer,
		zipCode:   zipCode,
		promoCode: promoCode,
		items:     items,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate checks the command's structure and records a notification for
// every malformed field. It reports true when the command is invalid.
//
// Only the customer document and the zip code are checked here. The promo
// code may be anything, including a code that matches no discount, and item
// contents are judged by the Order aggregate.
func (c *CreateOrderCommand) Validate() bool {
	if err := c.guard.Validate(ErrCreateOrderCommandIsNotConstructed); err != nil {
		c.AddNotification("CreateOrderCommand", err.Error())
	}

	if len(c.customer) != customerDocumentLength {
		c.AddNotification("CreateOrderCommand.Customer", "invalid customer")
	}
	if len(c.zipCode) != zipCodeLength {
		c.AddNotification("CreateOrderCommand.ZipCode", "invalid zip code")
	}

	return !c.IsValid()
}

// Customer returns the customer's document number.
func (c *CreateOrderCommand) Customer() string {
	return c.customer
}

// ZipCode returns the delivery zip code.
func (c *CreateOrderCommand) ZipCode() string {
	return c.zipCode
}

// PromoCode returns the promo code, possibly empty.
func (c *CreateOrderCommand) PromoCode() string {
	return c.promoCode
}

// Items returns the requested order lines.
func (c *CreateOrderCommand) Items() []CreateOrderItemCommand {
	return c.items
}

// ProductIDs returns the distinct set of product identifiers referenced by
// the command's items, in first-seen order.
func (c *CreateOrderCommand) ProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]bool, len(c.items))
	ids := make([]kernel.UUID, 0, len(c.items))
	for _, item := range c.items {
		if seen[item.productID] {
			continue
		}
		seen[item.productID] = true
		ids = append(ids, item.productID)
	}
	return ids
}
