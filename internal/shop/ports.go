package shop

import (
	"context"

	"storefront/internal/models"
)

// Remote is the commerce API as seen by the dispatcher.
type Remote interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListCart(ctx context.Context) (models.Cart, error)
	AddCartItem(ctx context.Context, productID string, quantity int) error
	UpdateCartItem(ctx context.Context, cartItemID string, quantity int) error
	DeleteCartItem(ctx context.Context, cartItemID string) error
	ClearCart(ctx context.Context) error
	CreateOrder(ctx context.Context, user models.OrderUser) (models.Order, error)

	ListOrders(ctx context.Context) ([]models.Order, error)
	SetOrderPaid(ctx context.Context, orderID string, paid bool) error
	DeleteOrder(ctx context.Context, orderID string) error
	DeleteAllOrders(ctx context.Context) error
}

// Notifier surfaces non-blocking messages to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
	Warning(message string)
}

// Prompt is the content of a confirmation dialog.
type Prompt struct {
	Title        string
	Body         string
	ConfirmLabel string
	CancelLabel  string
}

// Confirmer asks the user to approve a destructive action. Declining is
// not an error.
type Confirmer interface {
	Confirm(ctx context.Context, prompt Prompt) bool
}
