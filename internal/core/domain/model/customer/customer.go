// Package customer provides the Customer entity referenced by orders.
// A customer is looked up by national document number when an order request
// arrives and is not mutated by the order aggregate.
package customer

import (
	"strings"

	"store/internal/core/domain/model/kernel"
	"store/internal/pkg/notifications"
)

// Customer is an identity-bearing entity with a name and contact email.
// Broken invariants are recorded as notifications; the entity is always
// constructed and immutable afterwards.
type Customer struct {
	notifications.Notifiable

	id       kernel.UUID
	document string
	name     string
	email    string
}

// New constructs a Customer and records a notification for every broken
// invariant (empty name, malformed email). Check IsValid on the result.
func New(id kernel.UUID, document, name, email string) *Customer {
	c := &Customer{
		id:       id,
		document: document,
		name:     name,
		email:    email,
	}

	if c.name == "" {
		c.AddNotification("Customer.Name", "name is required")
	}
	if c.email == "" || !strings.Contains(c.email, "@") {
		c.AddNotification("Customer.Email", "email is invalid")
	}

	return c
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Document returns the customer's national document number.
func (c *Customer) Document() string {
	return c.document
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's contact email.
func (c *Customer) Email() string {
	return c.email
}
