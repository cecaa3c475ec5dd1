package apiclient

import (
	"context"
	"net/http"

	"storefront/internal/models"
)

type orderPaidRequest struct {
	ID   string `json:"id"`
	Paid bool   `json:"paid"`
}

// ListOrders returns every order.
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var resp ordersResponse
	if err := c.do(ctx, "list orders", http.MethodGet, c.adminPath("orders"), true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// SetOrderPaid updates the paid flag of an order.
func (c *Client) SetOrderPaid(ctx context.Context, orderID string, paid bool) error {
	body := orderPaidRequest{ID: orderID, Paid: paid}
	return c.do(ctx, "update order", http.MethodPut, c.adminPath("orders"), true, body, nil)
}

// DeleteOrder removes a single order.
func (c *Client) DeleteOrder(ctx context.Context, orderID string) error {
	return c.do(ctx, "delete order", http.MethodDelete, c.adminPath("orders", orderID), true, nil, nil)
}

// DeleteAllOrders removes every order.
func (c *Client) DeleteAllOrders(ctx context.Context) error {
	return c.do(ctx, "delete all orders", http.MethodDelete, c.adminPath("orders"), true, nil, nil)
}
