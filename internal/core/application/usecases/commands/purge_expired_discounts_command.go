package commands

import (
	"errors"
	"time"

	"store/internal/pkg/guard"
)

var (
	ErrPurgeExpiredDiscountsCommandIsNotConstructed = errors.New(
		"PurgeExpiredDiscountsCommand must be created via NewPurgeExpiredDiscountsCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must not be negative")
)

// PurgeExpiredDiscountsCommand represents a request to delete discounts
// whose expiry predates now minus a retention window. A zero retention
// deletes everything already expired.
type PurgeExpiredDiscountsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeExpiredDiscountsCommand creates a command to purge expired
// discounts, keeping those expired less than retention ago.
func NewPurgeExpiredDiscountsCommand(retention time.Duration) (PurgeExpiredDiscountsCommand, error) {
	if retention < 0 {
		return PurgeExpiredDiscountsCommand{}, ErrRetentionIsInvalid
	}

	return PurgeExpiredDiscountsCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeExpiredDiscountsCommandIsNotConstructed if validation fails.
func (c PurgeExpiredDiscountsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredDiscountsCommandIsNotConstructed)
}

// Retention returns how long expired discounts are kept before deletion.
func (c PurgeExpiredDiscountsCommand) Retention() time.Duration {
	return c.retention
}
