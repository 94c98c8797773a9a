package commands

import (
	"context"
	"time"
)

// PurgeExpiredDiscountsCommandHandler removes expired discounts from storage.
// Run periodically by the discount purge job.
type PurgeExpiredDiscountsCommandHandler struct {
	uowFactory DiscountUoWFactory
}

// NewPurgeExpiredDiscountsCommandHandler creates a handler for discount cleanup.
// Requires a DiscountUoWFactory for transactional persistence.
func NewPurgeExpiredDiscountsCommandHandler(uowFactory DiscountUoWFactory) PurgeExpiredDiscountsCommandHandler {
	return PurgeExpiredDiscountsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes every discount that expired before now minus the
// retention window. Returns the number of rows deleted.
func (h *PurgeExpiredDiscountsCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredDiscountsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.Retention())

	deleted, err := uow.DiscountRepository().DeleteExpired(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
