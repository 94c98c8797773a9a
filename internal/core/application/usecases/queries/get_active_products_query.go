package queries

import (
	"errors"

	"store/internal/core/domain/model/kernel"
	"store/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetActiveProductsQueryIsNotConstructed = errors.New(
		"GetActiveProductsQuery must be created via NewGetActiveProductsQuery constructor",
	)
)

// GetActiveProductsQuery retrieves the products currently offered for sale.
//
// Example:
//
//	query := NewGetActiveProductsQuery()
//	handler := NewGetActiveProductsQueryHandler(db)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active products: %w", err)
//	}
type GetActiveProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveProductsQuery creates a query to retrieve active products.
func NewGetActiveProductsQuery() GetActiveProductsQuery {
	return GetActiveProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveProductsQueryIsNotConstructed if validation fails.
func (q GetActiveProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveProductsQueryIsNotConstructed)
}

// GetActiveProductsQueryResponse represents one sellable product.
type GetActiveProductsQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Price decimal.Decimal
}
