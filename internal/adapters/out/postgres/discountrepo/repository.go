package discountrepo

import (
	"context"
	"errors"
	"time"

	"store/internal/core/domain/model/discount"
	"store/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDiscountRepository implements DiscountRepository using GORM.
type GormDiscountRepository struct {
	db *gorm.DB
}

// NewGormDiscountRepository creates a new GORM discount repository.
func NewGormDiscountRepository(db *gorm.DB) *GormDiscountRepository {
	return &GormDiscountRepository{db: db}
}

// Add saves a discount under the given promo code. Used by seeding and
// administration, not by the order flow.
func (r *GormDiscountRepository) Add(ctx context.Context, code string, d *discount.Discount) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	dto := fromDomain(code, d)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByCode retrieves the discount registered under the given promo code.
// Returns (nil, nil) when no discount matches. Expired discounts are still
// returned; the aggregate decides whether they contribute to a total.
func (r *GormDiscountRepository) GetByCode(ctx context.Context, code string) (*discount.Discount, error) {
	var dto DiscountDTO
	err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// DeleteExpired removes all discounts whose expiry predates the cutoff and
// reports how many rows were removed.
func (r *GormDiscountRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", cutoff).Delete(&DiscountDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
