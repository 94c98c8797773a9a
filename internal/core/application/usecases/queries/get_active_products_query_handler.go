package queries

import (
	"context"

	"store/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveProductsQueryHandler retrieves sellable products from the database.
type GetActiveProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveProductsQueryHandler creates a handler for active product queries.
// Requires a GORM database connection for query execution.
func NewGetActiveProductsQueryHandler(db *gorm.DB) GetActiveProductsQueryHandler {
	return GetActiveProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve all active products.
// Results are sorted by name for consistent output.
func (h GetActiveProductsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveProductsQuery,
) ([]GetActiveProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetActiveProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM products
		WHERE active
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var productResp GetActiveProductsQueryResponse
		var id uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&id,
			&productResp.Name,
			&price,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		productResp.ID = productID
		productResp.Price = price

		products = append(products, productResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
