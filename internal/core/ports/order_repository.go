// Package ports defines repository interfaces for the store domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and age.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items and customer snapshot.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllWaitingPaymentBefore retrieves all orders still waiting for
	// payment that were created before the cutoff. Used by the stale order
	// cancellation job.
	GetAllWaitingPaymentBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
