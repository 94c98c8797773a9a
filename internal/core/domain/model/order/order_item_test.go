package order_test

import (
	"testing"

	"store/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("captures the product price at creation time", func(t *testing.T) {
		p := productPriced(25)

		item := order.NewItem(p, 3)

		require.True(t, item.IsValid())
		assert.Same(t, p, item.Product())
		assert.True(t, item.Price().Equal(decimal.NewFromInt(25)))
		assert.Equal(t, 3, item.Quantity())
	})

	t.Run("nil product invalidates the item", func(t *testing.T) {
		item := order.NewItem(nil, 1)

		assert.False(t, item.IsValid())
		require.Len(t, item.Notifications(), 1)
		assert.Equal(t, "OrderItem.Product", item.Notifications()[0].Key)
		assert.True(t, item.Price().IsZero())
	})

	t.Run("non-positive quantity invalidates the item", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			item := order.NewItem(productPriced(10), qty)

			assert.False(t, item.IsValid(), "quantity %d", qty)
		}
	})

	t.Run("nil product and bad quantity accumulate both failures", func(t *testing.T) {
		item := order.NewItem(nil, 0)

		assert.Len(t, item.Notifications(), 2)
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("keeps the persisted price over the current product price", func(t *testing.T) {
		p := productPriced(99)

		item := order.RestoreItem(p, decimal.NewFromInt(10), 2)

		assert.True(t, item.Price().Equal(decimal.NewFromInt(10)))
		assert.True(t, item.IsValid())
	})
}

func TestOrderItem_Total(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		quantity int
		want     int64
	}{
		{"single unit", 10, 1, 10},
		{"multiple units", 10, 5, 50},
		{"zero price", 0, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := order.NewItem(productPriced(tt.price), tt.quantity)

			assert.True(t, item.Total().Equal(decimal.NewFromInt(tt.want)),
				"total is %s", item.Total())
		})
	}
}
