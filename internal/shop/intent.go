package shop

import "storefront/internal/validation"

// Intent is a user action handled by Dispatcher.Dispatch.
type Intent interface {
	Name() string
}

type (
	// LoadStorefront fetches products and the cart.
	LoadStorefront struct{}
	// RefreshCart re-fetches the cart.
	RefreshCart struct{}
	// FilterCategory narrows the visible products. It makes no remote call.
	FilterCategory struct{ Category string }
	// AddToCart adds one unit of a product.
	AddToCart struct{ ProductID string }
	// RemoveFromCart deletes a cart item.
	RemoveFromCart struct{ CartItemID string }
	// ChangeQuantity moves a cart item's quantity by Delta.
	ChangeQuantity struct {
		CartItemID string
		Delta      int
	}
	// ClearCart empties the cart after confirmation.
	ClearCart struct{}
	// SubmitOrder validates the form and places an order for the cart.
	SubmitOrder struct{ Form validation.OrderForm }

	// RefreshOrders re-fetches the order list.
	RefreshOrders struct{}
	// ToggleOrderPaid flips an order's paid flag.
	ToggleOrderPaid struct{ OrderID string }
	// DeleteOrder removes one order after confirmation.
	DeleteOrder struct{ OrderID string }
	// DeleteAllOrders removes every order after confirmation.
	DeleteAllOrders struct{}
)

func (LoadStorefront) Name() string  { return "load_storefront" }
func (RefreshCart) Name() string     { return "refresh_cart" }
func (FilterCategory) Name() string  { return "filter_category" }
func (AddToCart) Name() string       { return "add_to_cart" }
func (RemoveFromCart) Name() string  { return "remove_from_cart" }
func (ChangeQuantity) Name() string  { return "change_quantity" }
func (ClearCart) Name() string       { return "clear_cart" }
func (SubmitOrder) Name() string     { return "submit_order" }
func (RefreshOrders) Name() string   { return "refresh_orders" }
func (ToggleOrderPaid) Name() string { return "toggle_order_paid" }
func (DeleteOrder) Name() string     { return "delete_order" }
func (DeleteAllOrders) Name() string { return "delete_all_orders" }
