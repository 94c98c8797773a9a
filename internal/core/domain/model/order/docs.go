// Package order provides the Order aggregate root of the store: pricing,
// item ownership and the payment/delivery status lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding the customer reference, delivery
//     fee, optional discount and the owned item sequence
//   - OrderItem: a product/quantity pair with the unit price snapshotted
//   - Status: a state machine enforcing the order lifecycle
//
// Key business rules:
//   - Every order starts in WaitingPayment with a generated 8-character number
//   - A valid customer is mandatory; its absence invalidates the whole order
//   - AddItem silently discards items without a product or with a
//     non-positive quantity; a dropped item is observable only through the
//     item count
//   - Total is never cached: discount expiration is re-evaluated at every call
//
// Validation failures at construction are accumulated as notifications
// rather than returned as errors, so an order always exists to report on.
package order
