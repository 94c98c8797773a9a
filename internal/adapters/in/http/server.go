// Package http exposes the store's use cases over a small JSON API.
package http

import (
	"net/http"
	"time"

	"store/internal/core/application/usecases/commands"
	"store/internal/core/application/usecases/queries"
	"store/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler

	// Query handlers
	getActiveProductsHandler queries.GetActiveProductsQueryHandler
	getPendingOrdersHandler  queries.GetPendingOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	getActiveProductsHandler queries.GetActiveProductsQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		getActiveProductsHandler: getActiveProductsHandler,
		getPendingOrdersHandler:  getPendingOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/pending", s.GetPendingOrders)
	v1.GET("/products/active", s.GetActiveProducts)
}

// NewOrderRequest is the POST /api/v1/orders payload.
type NewOrderRequest struct {
	Customer  string                `json:"customer"`
	ZipCode   string                `json:"zipCode"`
	PromoCode string                `json:"promoCode"`
	Items     []NewOrderItemRequest `json:"items"`
}

// NewOrderItemRequest is one requested order line.
type NewOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// NotificationResponse is one validation failure in an error response.
type NotificationResponse struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

// OrderResponse is the success payload for order creation.
type OrderResponse struct {
	ID      string          `json:"id"`
	Number  string          `json:"number"`
	Status  string          `json:"status"`
	Total   decimal.Decimal `json:"total"`
	Message string          `json:"message"`
}

// PendingOrderResponse is one entry of GET /api/v1/orders/pending.
type PendingOrderResponse struct {
	ID        string `json:"id"`
	Number    string `json:"number"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ProductResponse is one entry of GET /api/v1/products/active.
type ProductResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ErrorResponse carries a failure message and its notifications.
type ErrorResponse struct {
	Code          int                    `json:"code"`
	Message       string                 `json:"message"`
	Notifications []NotificationResponse `json:"notifications,omitempty"`
}

// CreateOrder handles POST /api/v1/orders - places a new order.
//
// Malformed product ids are tolerated: the line is forwarded with a zero id,
// resolves to no product, and is dropped by the aggregate like any other
// unknown product.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.CreateOrderItemCommand, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			productID = kernel.UUID{}
		}
		items = append(items, commands.NewCreateOrderItemCommand(productID, item.Quantity))
	}

	cmd := commands.NewCreateOrderCommand(req.Customer, req.ZipCode, req.PromoCode, items)

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	if !result.Success {
		notifications := make([]NotificationResponse, len(result.Notifications))
		for i, n := range result.Notifications {
			notifications[i] = NotificationResponse{Key: n.Key, Message: n.Message}
		}

		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:          http.StatusUnprocessableEntity,
			Message:       result.Message,
			Notifications: notifications,
		})
	}

	return ctx.JSON(http.StatusCreated, OrderResponse{
		ID:      result.Order.ID().String(),
		Number:  result.Order.Number(),
		Status:  result.Order.Status().String(),
		Total:   result.Order.Total(),
		Message: result.Message,
	})
}

// GetPendingOrders handles GET /api/v1/orders/pending - lists non-canceled orders.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]PendingOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = PendingOrderResponse{
			ID:        o.ID.String(),
			Number:    o.Number,
			Status:    o.Status,
			CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveProducts handles GET /api/v1/products/active - lists sellable products.
func (s *Server) GetActiveProducts(ctx echo.Context) error {
	query := queries.NewGetActiveProductsQuery()

	products, err := s.getActiveProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve products",
		})
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ProductResponse{
			ID:    p.ID.String(),
			Name:  p.Name,
			Price: p.Price,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
