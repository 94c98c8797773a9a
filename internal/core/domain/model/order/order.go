package order

import (
	"fmt"
	"time"

	"store/internal/core/domain/model/customer"
	"store/internal/core/domain/model/discount"
	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/product"
	"store/internal/pkg/errs"
	"store/internal/pkg/notifications"

	"github.com/shopspring/decimal"
)

// Order is the aggregate root for a purchase. It owns its item sequence
// exclusively (items enter only through AddItem) and holds non-owning
// references to the customer and the optional discount.
//
// Invariants:
//   - Must reference a non-nil, valid customer
//   - Delivery fee must not be negative
//   - Items must reference a product and carry a positive quantity;
//     additions violating this are silently discarded
//   - Status transitions follow the Status state machine
//
// Broken construction invariants are recorded as notifications on the order
// itself; the aggregate is always fully constructed so callers can inspect
// everything that went wrong at once.
type Order struct {
	notifications.Notifiable

	id          kernel.UUID
	number      string
	customer    *customer.Customer
	deliveryFee decimal.Decimal
	discount    *discount.Discount
	items       []*OrderItem
	status      Status
	paidAmount  decimal.Decimal
	createdAt   time.Time
}

// New creates an Order in WaitingPayment status with a generated 8-character
// number and an empty item sequence. A nil or invalid customer and a
// negative delivery fee are recorded as notifications (the customer's own
// failures are merged in), never returned as errors.
func New(c *customer.Customer, deliveryFee decimal.Decimal, d *discount.Discount) *Order {
	o := &Order{
		id:          kernel.NewUUID(),
		number:      newNumber(),
		customer:    c,
		deliveryFee: deliveryFee,
		discount:    d,
		status:      WaitingPayment,
		createdAt:   time.Now().UTC(),
	}

	if c == nil {
		o.AddNotification("Order.Customer", "customer is required")
	} else if !c.IsValid() {
		o.AddNotification("Order.Customer", "customer is invalid")
		o.Merge(c)
	}
	if deliveryFee.IsNegative() {
		o.AddNotification("Order.DeliveryFee", "delivery fee cannot be negative")
	}

	return o
}

// Restore reconstructs an order from persistence. Unlike New it returns an
// error instead of recording notifications: a row that fails these checks is
// corrupt data, not user input.
func Restore(
	id kernel.UUID,
	number string,
	c *customer.Customer,
	deliveryFee decimal.Decimal,
	d *discount.Discount,
	items []*OrderItem,
	status Status,
	paidAmount decimal.Decimal,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(number) != NumberLength {
		return nil, errs.NewValueIsInvalidErrorWithCause("number is invalid",
			fmt.Errorf("%q is not %d characters", number, NumberLength))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:          id,
		number:      number,
		customer:    c,
		deliveryFee: deliveryFee,
		discount:    d,
		items:       items,
		status:      status,
		paidAmount:  paidAmount,
		createdAt:   createdAt,
	}, nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the generated 8-character order number.
func (o *Order) Number() string {
	return o.number
}

// Customer returns the ordering customer. Nil when the order was
// constructed without one (the order is then invalid).
func (o *Order) Customer() *customer.Customer {
	return o.customer
}

// DeliveryFee returns the delivery fee applied to this order.
func (o *Order) DeliveryFee() decimal.Decimal {
	return o.deliveryFee
}

// Discount returns the applied discount, or nil when none matched.
func (o *Order) Discount() *discount.Discount {
	return o.discount
}

// Items returns the accepted items in insertion order. The returned slice
// is a copy; the aggregate's sequence can only change through AddItem.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaidAmount returns the amount reported at payment time. Zero until Pay
// succeeds. The amount is advisory and is not reconciled against Total.
func (o *Order) PaidAmount() decimal.Decimal {
	return o.paidAmount
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AddItem builds a candidate item from the product and quantity and appends
// it when valid. Invalid candidates (nil product, non-positive quantity) are
// discarded without raising anything: the only observable effect is that
// Items does not grow. See the package docs for why drops stay silent.
func (o *Order) AddItem(p *product.Product, quantity int) {
	item := NewItem(p, quantity)
	if !item.IsValid() {
		return
	}

	o.items = append(o.items, item)
}

// Total returns sum(item price x quantity) + delivery fee - discount value.
// It is recomputed on every call and the discount is re-evaluated against
// the current time, so the same order can return different totals once its
// discount expires. An absent or expired discount contributes zero.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	total = total.Add(o.deliveryFee)
	if o.discount != nil {
		total = total.Sub(o.discount.Value())
	}
	return total
}

// Pay transitions the order to WaitingDelivery and records the reported
// amount. The amount is not checked against Total. Returns an error when
// the order is not waiting for payment.
func (o *Order) Pay(amount decimal.Decimal) error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paidAmount = amount
	return nil
}

// Cancel moves the order to the terminal Canceled status. It never fails,
// regardless of the current status.
func (o *Order) Cancel() {
	o.status = o.status.Cancel()
}
