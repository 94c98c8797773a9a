// Package deliveryfeerepo persists the zip code fee table.
package deliveryfeerepo

import (
	"github.com/shopspring/decimal"
)

// DeliveryFeeDTO represents one zip code's delivery fee.
type DeliveryFeeDTO struct {
	ZipCode string `gorm:"type:varchar(8);primaryKey"`
	Fee     decimal.Decimal
}

// TableName specifies the database table name for delivery fee entries.
func (DeliveryFeeDTO) TableName() string {
	return "delivery_fees"
}
