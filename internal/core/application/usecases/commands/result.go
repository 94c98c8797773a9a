package commands

import (
	"store/internal/core/domain/model/order"
	"store/internal/pkg/notifications"
)

// Result is the outcome of an order creation attempt. Validation failures
// are a Result, not an error: Success is false, Message names the failure
// stage and Notifications carries every recorded problem. Errors are
// reserved for infrastructure faults (transaction or repository failures).
type Result struct {
	Success       bool
	Message       string
	Order         *order.Order
	Notifications []notifications.Notification
}

func newSuccessResult(message string, o *order.Order) Result {
	return Result{
		Success: true,
		Message: message,
		Order:   o,
	}
}

func newFailureResult(message string, n []notifications.Notification) Result {
	return Result{
		Message:       message,
		Notifications: n,
	}
}
