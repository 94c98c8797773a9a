package ports

import (
	"context"

	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/product"
)

// ProductRepository defines the read contract for the product catalog.
type ProductRepository interface {
	// GetByIDs retrieves the products matching the given identifiers.
	// Unknown identifiers are simply absent from the result; no error is
	// raised for them.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
