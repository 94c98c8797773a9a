package commands

import (
	"context"
	"time"
)

// CancelStaleOrdersCommandHandler cancels orders that never got paid.
// Run periodically by the stale order cancellation job.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale order cleanup.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every order still waiting for payment that was created
// before now minus the command's max age. All cancellations happen in one
// transaction. Returns the number of orders canceled.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
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

	orderRepo := uow.OrderRepository()
	cutoff := time.Now().UTC().Add(-cmd.MaxAge())

	stale, err := orderRepo.GetAllWaitingPaymentBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, o := range stale {
		o.Cancel()
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
