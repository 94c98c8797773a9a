package order_test

import (
	"testing"
	"time"

	"store/internal/core/domain/model/customer"
	"store/internal/core/domain/model/discount"
	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/order"
	"store/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() *customer.Customer {
	return customer.New(kernel.NewUUID(), "12345678911", "Bruce Wayne", "batman@dc.mock")
}

func productPriced(price int64) *product.Product {
	return product.New(kernel.NewUUID(), "Product", decimal.NewFromInt(price), true)
}

func validDiscount(amount int64) *discount.Discount {
	return discount.New(decimal.NewFromInt(amount), time.Now().Add(30*24*time.Hour))
}

func expiredDiscount(amount int64) *discount.Discount {
	return discount.New(decimal.NewFromInt(amount), time.Now().Add(-30*24*time.Hour))
}

func TestNew(t *testing.T) {
	t.Run("new order has an 8-character number", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.Zero, nil)

		assert.Len(t, o.Number(), 8)
		assert.NoError(t, o.ID().Validate())
	})

	t.Run("new order starts in WaitingPayment", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.Zero, nil)

		assert.Equal(t, order.WaitingPayment, o.Status())
		assert.True(t, o.IsValid())
		assert.Empty(t, o.Items())
	})

	t.Run("order numbers are unique across orders", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			o := order.New(validCustomer(), decimal.Zero, nil)
			assert.False(t, seen[o.Number()], "duplicate number %s", o.Number())
			seen[o.Number()] = true
		}
	})

	t.Run("nil customer invalidates the order", func(t *testing.T) {
		o := order.New(nil, decimal.NewFromInt(10), validDiscount(10))

		assert.False(t, o.IsValid())
		require.Len(t, o.Notifications(), 1)
		assert.Equal(t, "Order.Customer", o.Notifications()[0].Key)
	})

	t.Run("invalid customer invalidates the order and merges its failures", func(t *testing.T) {
		bad := customer.New(kernel.NewUUID(), "12345678911", "", "no-at-sign")

		o := order.New(bad, decimal.Zero, nil)

		assert.False(t, o.IsValid())
		keys := make([]string, 0)
		for _, n := range o.Notifications() {
			keys = append(keys, n.Key)
		}
		assert.Contains(t, keys, "Order.Customer")
		assert.Contains(t, keys, "Customer.Name")
		assert.Contains(t, keys, "Customer.Email")
	})

	t.Run("negative delivery fee invalidates the order", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.NewFromInt(-1), nil)

		assert.False(t, o.IsValid())
		require.Len(t, o.Notifications(), 1)
		assert.Equal(t, "Order.DeliveryFee", o.Notifications()[0].Key)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("valid item is appended", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.Zero, nil)

		o.AddItem(productPriced(10), 2)

		require.Len(t, o.Items(), 1)
		assert.Equal(t, 2, o.Items()[0].Quantity())
	})

	t.Run("nil product is silently dropped", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.Zero, nil)

		o.AddItem(nil, 1)

		assert.Empty(t, o.Items())
		assert.True(t, o.IsValid(), "dropped items must not invalidate the order")
	})

	t.Run("non-positive quantity is silently dropped", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.Zero, nil)

		o.AddItem(productPriced(10), 0)
		o.AddItem(productPriced(10), -1)

		assert.Empty(t, o.Items())
		assert.True(t, o.IsValid())
	})

	t.Run("items slice is a copy", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.Zero, nil)
		o.AddItem(productPriced(10), 1)

		items := o.Items()
		items[0] = nil

		require.Len(t, o.Items(), 1)
		assert.NotNil(t, o.Items()[0])
	})
}

func TestOrder_Total(t *testing.T) {
	t.Run("two items without fee or discount", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.Zero, nil)
		o.AddItem(productPriced(10), 2)
		o.AddItem(productPriced(30), 1)

		assert.True(t, o.Total().Equal(decimal.NewFromInt(50)), "total is %s", o.Total())
	})

	t.Run("delivery fee is added", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.NewFromInt(10), nil)
		o.AddItem(productPriced(10), 5)

		assert.True(t, o.Total().Equal(decimal.NewFromInt(60)))
	})

	t.Run("valid discount is subtracted", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.NewFromInt(10), validDiscount(10))
		o.AddItem(productPriced(10), 5)

		assert.True(t, o.Total().Equal(decimal.NewFromInt(50)))
	})

	t.Run("expired discount contributes zero", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.NewFromInt(10), expiredDiscount(20))
		o.AddItem(productPriced(10), 5)

		assert.True(t, o.Total().Equal(decimal.NewFromInt(60)))
	})

	t.Run("total changes when the discount expires between calls", func(t *testing.T) {
		d := discount.New(decimal.NewFromInt(10), time.Now().Add(20*time.Millisecond))
		o := order.New(validCustomer(), decimal.NewFromInt(10), d)
		o.AddItem(productPriced(10), 5)

		assert.True(t, o.Total().Equal(decimal.NewFromInt(50)))

		time.Sleep(30 * time.Millisecond)
		assert.True(t, o.Total().Equal(decimal.NewFromInt(60)))
	})
}

func TestOrder_Pay(t *testing.T) {
	t.Run("payment moves the order to WaitingDelivery", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.Zero, nil)
		o.AddItem(productPriced(10), 1)

		err := o.Pay(decimal.NewFromInt(10))

		require.NoError(t, err)
		assert.Equal(t, order.WaitingDelivery, o.Status())
		assert.True(t, o.PaidAmount().Equal(decimal.NewFromInt(10)))
	})

	t.Run("amount is advisory and not reconciled against the total", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.Zero, nil)
		o.AddItem(productPriced(100), 3)

		err := o.Pay(decimal.NewFromInt(10))

		require.NoError(t, err)
		assert.Equal(t, order.WaitingDelivery, o.Status())
	})

	t.Run("paying twice fails", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.Zero, nil)
		require.NoError(t, o.Pay(decimal.NewFromInt(10)))

		err := o.Pay(decimal.NewFromInt(10))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "WaitingDelivery is not a valid status to pay")
	})

	t.Run("paying a canceled order fails", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.Zero, nil)
		o.Cancel()

		err := o.Pay(decimal.NewFromInt(10))

		require.Error(t, err)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancels from WaitingPayment", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.Zero, nil)

		o.Cancel()

		assert.Equal(t, order.Canceled, o.Status())
	})

	t.Run("cancels from WaitingDelivery", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.Zero, nil)
		require.NoError(t, o.Pay(decimal.NewFromInt(10)))

		o.Cancel()

		assert.Equal(t, order.Canceled, o.Status())
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		o := order.New(validCustomer(), decimal.Zero, nil)

		o.Cancel()
		o.Cancel()

		assert.Equal(t, order.Canceled, o.Status())
	})
}

func TestRestore(t *testing.T) {
	id := kernel.NewUUID()
	c := validCustomer()
	createdAt := time.Now().UTC().Add(-time.Hour)
	items := []*order.OrderItem{
		order.RestoreItem(productPriced(10), decimal.NewFromInt(10), 2),
	}

	t.Run("reconstructs a persisted order", func(t *testing.T) {
		o, err := order.Restore(id, "AB12CD34", c, decimal.NewFromInt(5), nil,
			items, order.WaitingDelivery, decimal.NewFromInt(25), createdAt)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "AB12CD34", o.Number())
		assert.Equal(t, order.WaitingDelivery, o.Status())
		assert.True(t, o.Total().Equal(decimal.NewFromInt(25)))
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("rejects zero id", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := order.Restore(zeroID, "AB12CD34", c, decimal.Zero, nil,
			nil, order.WaitingPayment, decimal.Zero, createdAt)

		require.Error(t, err)
	})

	t.Run("rejects malformed number", func(t *testing.T) {
		_, err := order.Restore(id, "SHORT", c, decimal.Zero, nil,
			nil, order.WaitingPayment, decimal.Zero, createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "number is invalid")
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := order.Restore(id, "AB12CD34", c, decimal.Zero, nil,
			nil, order.Unknown, decimal.Zero, createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})
}
