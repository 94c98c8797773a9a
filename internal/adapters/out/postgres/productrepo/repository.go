package productrepo

import (
	"context"

	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/product"
	"store/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new catalog product. Used by seeding and administration, not
// by the order flow.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if !p.IsValid() {
		return errs.NewValueIsInvalidError("product")
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByIDs retrieves the products matching the given identifiers.
// Unknown identifiers are simply absent from the result.
func (r *GormProductRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	if len(ids) == 0 {
		return []*product.Product{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}
