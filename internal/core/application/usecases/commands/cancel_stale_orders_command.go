package commands

import (
	"errors"
	"time"

	"store/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("max age must be greater than 0")
)

// CancelStaleOrdersCommand represents a request to cancel every order that
// has been waiting for payment longer than the given age.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel orders older than
// maxAge that are still waiting for payment. maxAge must be positive.
func NewCancelStaleOrdersCommand(maxAge time.Duration) (CancelStaleOrdersCommand, error) {
	if maxAge <= 0 {
		return CancelStaleOrdersCommand{}, ErrMaxAgeIsInvalid
	}

	return CancelStaleOrdersCommand{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelStaleOrdersCommandIsNotConstructed if validation fails.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns how long an unpaid order may wait before cancellation.
func (c CancelStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}
