package ports

import (
	"context"

	"store/internal/core/domain/model/customer"
)

// CustomerRepository defines the read contract for customer records.
// Customers are provisioned out of band; this service only looks them up.
type CustomerRepository interface {
	// GetByDocument retrieves the customer registered under the given
	// document number. Returns (nil, nil) when no customer matches.
	GetByDocument(ctx context.Context, document string) (*customer.Customer, error)
}
