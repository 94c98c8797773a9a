// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"store/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// DiscountRepoFactory provides access to discount repository within a transaction.
	DiscountRepoFactory interface {
		DiscountRepository() ports.DiscountRepository
	}

	// DeliveryFeeRepoFactory provides access to delivery fee repository within a transaction.
	DeliveryFeeRepoFactory interface {
		DeliveryFeeRepository() ports.DeliveryFeeRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DiscountUoW manages transactions for discount housekeeping operations.
	DiscountUoW interface {
		TxManager
		DiscountRepoFactory
	}

	// DiscountUoWFactory creates new discount unit of work instances.
	DiscountUoWFactory interface {
		Create() DiscountUoW
	}

	// CheckoutUoW manages transactions for order creation, which reads
	// customers, products, discounts and delivery fees and writes orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   customerRepo := uow.CustomerRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		ProductRepoFactory
		DiscountRepoFactory
		DeliveryFeeRepoFactory
	}

	// CheckoutUoWFactory creates new unit of work instances for order creation.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
