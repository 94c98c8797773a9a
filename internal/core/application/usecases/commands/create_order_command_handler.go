package commands

import (
	"context"
	"fmt"

	"store/internal/core/domain/model/order"
	"store/internal/core/domain/model/product"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the customer, delivery fee, discount and products, builds the
// order aggregate and persists it when every check passes.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd := NewCreateOrderCommand("12345678911", "11123456", "", items)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	if !result.Success {
//	    // result.Notifications lists everything that went wrong
//	}
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CheckoutUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
//
// A structurally invalid command fails fast with message "invalid order"
// before any repository is queried. Otherwise the handler resolves every
// collaborator, builds the order, and either returns "failed to generate
// order" with the accumulated notifications or persists the order and
// returns success with a message embedding the generated number. The save
// happens exactly once, only on the success path.
//
// Absent lookups are not errors: an unknown customer reaches the aggregate
// as nil and surfaces as a customer notification, an unknown zip code
// yields a zero fee, an unmatched promo code yields no discount, and an
// unknown product id makes its item an invalid candidate that the order
// drops.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd *CreateOrderCommand) (Result, error) {
	if cmd.Validate() {
		return newFailureResult("invalid order", cmd.Notifications()), nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Result{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.CustomerRepository().GetByDocument(ctx, cmd.Customer())
	if err != nil {
		return Result{}, err
	}

	deliveryFee, err := uow.DeliveryFeeRepository().GetByZipCode(ctx, cmd.ZipCode())
	if err != nil {
		return Result{}, err
	}

	discount, err := uow.DiscountRepository().GetByCode(ctx, cmd.PromoCode())
	if err != nil {
		return Result{}, err
	}

	products, err := uow.ProductRepository().GetByIDs(ctx, cmd.ProductIDs())
	if err != nil {
		return Result{}, err
	}

	productsByID := make(map[string]*product.Product, len(products))
	for _, p := range products {
		productsByID[p.ID().String()] = p
	}

	o := order.New(customer, deliveryFee, discount)
	for _, item := range cmd.Items() {
		o.AddItem(productsByID[item.ProductID().String()], item.Quantity())
	}

	cmd.Merge(o)
	if !cmd.IsValid() {
		return newFailureResult("failed to generate order", cmd.Notifications()), nil
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return Result{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Result{}, err
	}

	return newSuccessResult(fmt.Sprintf("order %s generated successfully", o.Number()), o), nil
}
