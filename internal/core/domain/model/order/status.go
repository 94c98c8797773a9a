package order

import (
	"fmt"

	"store/internal/pkg/errs"
)

// Status represents the payment/delivery lifecycle state of an order.
//
// State transitions:
//
//	WaitingPayment ──> WaitingDelivery
//	       │                  │
//	       └──────> Canceled <┘
//
// Pay and Cancel are one-way; no transition leaves Canceled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// WaitingPayment is the initial status of every new order.
	WaitingPayment

	// WaitingDelivery indicates the order has been paid and is queued
	// for fulfillment.
	WaitingDelivery

	// Canceled is the terminal status, reachable from any other state.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		WaitingPayment:  "WaitingPayment",
		WaitingDelivery: "WaitingDelivery",
		Canceled:        "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		WaitingPayment:  "WaitingPayment",
		WaitingDelivery: "WaitingDelivery",
		Canceled:        "Canceled",
	}
}

// Validate checks that the Status value is one of the defined states.
// Used when reconstructing orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions the status to WaitingDelivery. Only WaitingPayment orders
// can be paid; paying a canceled or already-paid order is an error.
func (s Status) Pay() (Status, error) {
	if s != WaitingPayment {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pay", s.String()),
		)
	}

	return WaitingDelivery, nil
}

// Cancel transitions the status to Canceled. Cancellation is unconditional:
// it succeeds from every state, including Canceled itself, and is terminal.
func (s Status) Cancel() Status {
	return Canceled
}
