package deliveryfeerepo

import (
	"context"
	"errors"

	"store/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormDeliveryFeeRepository implements DeliveryFeeRepository using GORM.
type GormDeliveryFeeRepository struct {
	db *gorm.DB
}

// NewGormDeliveryFeeRepository creates a new GORM delivery fee repository.
func NewGormDeliveryFeeRepository(db *gorm.DB) *GormDeliveryFeeRepository {
	return &GormDeliveryFeeRepository{db: db}
}

// Add saves a fee for a zip code. Used by seeding and administration, not
// by the order flow.
func (r *GormDeliveryFeeRepository) Add(ctx context.Context, zipCode string, fee decimal.Decimal) error {
	if zipCode == "" {
		return errs.NewValueIsRequiredError("zipCode")
	}

	dto := DeliveryFeeDTO{ZipCode: zipCode, Fee: fee}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByZipCode retrieves the fee registered for the given zip code.
// Returns decimal.Zero when the zip code has no registered fee.
func (r *GormDeliveryFeeRepository) GetByZipCode(ctx context.Context, zipCode string) (decimal.Decimal, error) {
	var dto DeliveryFeeDTO
	err := r.db.WithContext(ctx).First(&dto, "zip_code = ?", zipCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return dto.Fee, nil
}
