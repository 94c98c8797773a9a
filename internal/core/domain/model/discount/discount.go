// Package discount provides the Discount entity resolved from promo codes.
package discount

import (
	"time"

	"store/internal/pkg/notifications"

	"github.com/shopspring/decimal"
)

// Discount is an amount off an order total, valid until its expiration
// instant. Expiration is evaluated lazily: IsValid and Value re-check the
// clock on every call, so a discount that was usable when the order was
// assembled can stop contributing before Total is computed.
type Discount struct {
	notifications.Notifiable

	amount    decimal.Decimal
	expiresAt time.Time
}

// New constructs a Discount. An expiration not strictly in the future
// records a notification, but the discount is still returned; whether it
// contributes to a total is decided by Value at evaluation time.
func New(amount decimal.Decimal, expiresAt time.Time) *Discount {
	d := &Discount{
		amount:    amount,
		expiresAt: expiresAt,
	}

	if !d.expiresAt.After(time.Now()) {
		d.AddNotification("Discount.ExpiresAt", "discount is expired")
	}

	return d
}

// Amount returns the configured discount amount, ignoring expiration.
func (d *Discount) Amount() decimal.Decimal {
	return d.amount
}

// ExpiresAt returns the expiration instant.
func (d *Discount) ExpiresAt() time.Time {
	return d.expiresAt
}

// IsValid reports whether the discount is usable right now. It compares the
// expiration against the current time on every call and shadows the embedded
// notification validity: usability is decided by the clock, not by
// construction-time state.
func (d *Discount) IsValid() bool {
	return time.Now().Before(d.expiresAt)
}

// Value returns the discount amount when currently valid, zero otherwise.
func (d *Discount) Value() decimal.Decimal {
	if d.IsValid() {
		return d.amount
	}
	return decimal.Zero
}
