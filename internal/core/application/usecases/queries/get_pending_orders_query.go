package queries

import (
	"errors"
	"time"

	"store/internal/core/domain/model/kernel"
	"store/internal/pkg/guard"
)

var (
	ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
		"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
	)
)

// GetPendingOrdersQuery retrieves all orders that are not canceled.
// Returns orders in WaitingPayment or WaitingDelivery status for monitoring.
//
// Example:
//
//	query := NewGetPendingOrdersQuery()
//	handler := NewGetPendingOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending orders: %w", err)
//	}
//
//	fmt.Printf("Found %d pending orders\n", len(orders))
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query to retrieve pending orders.
// This is a parameterless query that fetches all non-canceled orders.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingOrdersQueryIsNotConstructed if validation fails.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse represents pending order information.
type GetPendingOrdersQueryResponse struct {
	ID        kernel.UUID
	Number    string
	Status    string
	CreatedAt time.Time
}
