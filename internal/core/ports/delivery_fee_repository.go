package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// DeliveryFeeRepository defines the read contract for the zip code fee table.
type DeliveryFeeRepository interface {
	// GetByZipCode retrieves the delivery fee registered for the given zip
	// code. Returns decimal.Zero when the zip code has no registered fee.
	GetByZipCode(ctx context.Context, zipCode string) (decimal.Decimal, error)
}
