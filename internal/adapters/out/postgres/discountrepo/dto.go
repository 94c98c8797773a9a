// Package discountrepo persists promo code discounts and maps rows to the
// domain Discount entity. The promo code itself is only a lookup key; the
// domain entity does not carry it.
package discountrepo

import (
	"time"

	"store/internal/core/domain/model/discount"

	"github.com/shopspring/decimal"
)

// DiscountDTO represents the database structure for promo code discounts.
type DiscountDTO struct {
	Code      string `gorm:"type:varchar(32);primaryKey"`
	Amount    decimal.Decimal
	ExpiresAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for discount entities.
func (DiscountDTO) TableName() string {
	return "discounts"
}

func fromDomain(code string, d *discount.Discount) DiscountDTO {
	return DiscountDTO{
		Code:      code,
		Amount:    d.Amount(),
		ExpiresAt: d.ExpiresAt(),
	}
}

func toDomain(dto DiscountDTO) *discount.Discount {
	return discount.New(dto.Amount, dto.ExpiresAt)
}
