package shop

import (
	"context"
	"errors"

	"storefront/internal/models"
)

var errRemote = errors.New("remote unavailable")

type call struct {
	Method   string
	ID       string
	Quantity int
	Paid     bool
}

type fakeRemote struct {
	products []models.Product
	cart     models.Cart
	orders   []models.Order

	calls   []call
	failOn  map[string]error
	created models.OrderUser
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{failOn: map[string]error{}}
}

func (f *fakeRemote) record(c call) error {
	f.calls = append(f.calls, c)
	return f.failOn[c.Method]
}

func (f *fakeRemote) count(method string) int {
	n := 0
	for _, c := range f.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (f *fakeRemote) mutations() []call {
	out := make([]call, 0)
	for _, c := range f.calls {
		switch c.Method {
		case "ListProducts", "ListCart", "ListOrders":
			continue
		}
		out = append(out, c)
	}
	return out
}

func (f *fakeRemote) ListProducts(ctx context.Context) ([]models.Product, error) {
	if err := f.record(call{Method: "ListProducts"}); err != nil {
		return nil, err
	}
	return f.products, nil
}

func (f *fakeRemote) ListCart(ctx context.Context) (models.Cart, error) {
	if err := f.record(call{Method: "ListCart"}); err != nil {
		return models.Cart{}, err
	}
	return f.cart, nil
}

func (f *fakeRemote) AddCartItem(ctx context.Context, productID string, quantity int) error {
	return f.record(call{Method: "AddCartItem", ID: productID, Quantity: quantity})
}

func (f *fakeRemote) UpdateCartItem(ctx context.Context, cartItemID string, quantity int) error {
	return f.record(call{Method: "UpdateCartItem", ID: cartItemID, Quantity: quantity})
}

func (f *fakeRemote) DeleteCartItem(ctx context.Context, cartItemID string) error {
	return f.record(call{Method: "DeleteCartItem", ID: cartItemID})
}

func (f *fakeRemote) ClearCart(ctx context.Context) error {
	return f.record(call{Method: "ClearCart"})
}

func (f *fakeRemote) CreateOrder(ctx context.Context, user models.OrderUser) (models.Order, error) {
	f.created = user
	if err := f.record(call{Method: "CreateOrder"}); err != nil {
		return models.Order{}, err
	}
	return models.Order{ID: "o-new", User: user}, nil
}

func (f *fakeRemote) ListOrders(ctx context.Context) ([]models.Order, error) {
	if err := f.record(call{Method: "ListOrders"}); err != nil {
		return nil, err
	}
	return f.orders, nil
}

func (f *fakeRemote) SetOrderPaid(ctx context.Context, orderID string, paid bool) error {
	return f.record(call{Method: "SetOrderPaid", ID: orderID, Paid: paid})
}

func (f *fakeRemote) DeleteOrder(ctx context.Context, orderID string) error {
	return f.record(call{Method: "DeleteOrder", ID: orderID})
}

func (f *fakeRemote) DeleteAllOrders(ctx context.Context) error {
	return f.record(call{Method: "DeleteAllOrders"})
}

type recordingNotifier struct {
	successes []string
	errors    []string
	warnings  []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Error(message string)   { n.errors = append(n.errors, message) }
func (n *recordingNotifier) Warning(message string) { n.warnings = append(n.warnings, message) }

type stubConfirmer struct {
	answer  bool
	prompts []Prompt
}

func (c *stubConfirmer) Confirm(ctx context.Context, prompt Prompt) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}
