package apiclient

import (
	"context"
	"net/http"

	"storefront/internal/models"
)

type productsResponse struct {
	Products []models.Product `json:"products"`
}

type ordersResponse struct {
	Orders []models.Order `json:"orders"`
}

type cartItemRequest struct {
	ID        string `json:"id,omitempty"`
	ProductID string `json:"productId,omitempty"`
	Quantity  int    `json:"quantity"`
}

type orderRequest struct {
	User models.OrderUser `json:"user"`
}

// ListProducts returns the product catalogue.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var resp productsResponse
	if err := c.do(ctx, "list products", http.MethodGet, c.customerPath("products"), false, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// ListCart returns the current cart.
func (c *Client) ListCart(ctx context.Context) (models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, "list cart", http.MethodGet, c.customerPath("carts"), false, nil, &cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// AddCartItem creates a cart item for productID.
func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int) error {
	body := cartItemRequest{ProductID: productID, Quantity: quantity}
	return c.do(ctx, "add cart item", http.MethodPost, c.customerPath("carts"), false, body, nil)
}

// UpdateCartItem sets the quantity of an existing cart item.
func (c *Client) UpdateCartItem(ctx context.Context, cartItemID string, quantity int) error {
	body := cartItemRequest{ID: cartItemID, Quantity: quantity}
	return c.do(ctx, "update cart item", http.MethodPatch, c.customerPath("carts"), false, body, nil)
}

// DeleteCartItem removes a single cart item.
func (c *Client) DeleteCartItem(ctx context.Context, cartItemID string) error {
	return c.do(ctx, "delete cart item", http.MethodDelete, c.customerPath("carts", cartItemID), false, nil, nil)
}

// ClearCart removes every cart item.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, "clear cart", http.MethodDelete, c.customerPath("carts"), false, nil, nil)
}

// CreateOrder turns the current cart into an order.
func (c *Client) CreateOrder(ctx context.Context, user models.OrderUser) (models.Order, error) {
	var order models.Order
	if err := c.do(ctx, "create order", http.MethodPost, c.customerPath("orders"), false, orderRequest{User: user}, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}
