package customerrepo

import (
	"context"
	"errors"

	"store/internal/core/domain/model/customer"
	"store/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add saves a new customer record. Used by seeding and administration, not
// by the order flow.
func (r *GormCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	if !c.IsValid() {
		return errs.NewValueIsInvalidError("customer")
	}

	dto := fromDomain(c)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByDocument retrieves the customer registered under the given document.
// Returns (nil, nil) when no customer matches.
func (r *GormCustomerRepository) GetByDocument(ctx context.Context, document string) (*customer.Customer, error) {
	var dto CustomerDTO
	err := r.db.WithContext(ctx).First(&dto, "document = ?", document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}
