package ports

import (
	"context"
	"time"

	"store/internal/core/domain/model/discount"
)

// DiscountRepository defines the contract for promo code lookups and
// housekeeping of expired codes.
type DiscountRepository interface {
	// GetByCode retrieves the discount registered under the given promo
	// code. Returns (nil, nil) when no discount matches. An expired
	// discount is still returned; expiry is the aggregate's concern.
	GetByCode(ctx context.Context, code string) (*discount.Discount, error)

	// DeleteExpired removes all discounts whose expiry predates the cutoff
	// and reports how many rows were removed.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
