package shop

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/cart"
	"storefront/internal/models"
	"storefront/internal/validation"
)

type harness struct {
	remote   *fakeRemote
	notifier *recordingNotifier
	confirm  *stubConfirmer
	d        *Dispatcher
}

func newHarness(confirm bool) *harness {
	h := &harness{
		remote:   newFakeRemote(),
		notifier: &recordingNotifier{},
		confirm:  &stubConfirmer{answer: confirm},
	}
	h.d = NewDispatcher(h.remote, h.notifier, h.confirm)
	return h
}

func cartWith(items ...models.CartItem) models.Cart {
	return models.Cart{Items: items}
}

func item(id, productID string, quantity int) models.CartItem {
	return models.CartItem{ID: id, Product: models.Product{ID: productID, Title: "Antony 雙人床架", Price: 100}, Quantity: quantity}
}

func TestAddExistingProductIssuesOneUpdate(t *testing.T) {
	h := newHarness(true)
	st := State{Cart: cartWith(item("c1", "p1", 2))}
	h.remote.cart = cartWith(item("c1", "p1", 3))

	next, err := h.d.Dispatch(context.Background(), st, AddToCart{ProductID: "p1"})

	require.NoError(t, err)
	assert.Equal(t, []call{{Method: "UpdateCartItem", ID: "c1", Quantity: 3}}, h.remote.mutations())
	assert.Equal(t, 0, h.remote.count("AddCartItem"))
	assert.Equal(t, 1, h.remote.count("ListCart"))
	assert.Equal(t, 3, next.Cart.Items[0].Quantity)
	assert.Equal(t, []string{"Added to cart"}, h.notifier.successes)
}

func TestAddNewProductIssuesOneCreate(t *testing.T) {
	h := newHarness(true)
	st := State{Cart: cartWith(item("c1", "p1", 2))}

	_, err := h.d.Dispatch(context.Background(), st, AddToCart{ProductID: "p2"})

	require.NoError(t, err)
	assert.Equal(t, []call{{Method: "AddCartItem", ID: "p2", Quantity: 1}}, h.remote.mutations())
	assert.Equal(t, 0, h.remote.count("UpdateCartItem"))
}

func TestDecreaseQuantityToZeroAsksBeforeRemoving(t *testing.T) {
	h := newHarness(false)
	st := State{Cart: cartWith(item("c1", "p1", 1))}

	next, err := h.d.Dispatch(context.Background(), st, ChangeQuantity{CartItemID: "c1", Delta: -1})

	require.NoError(t, err)
	assert.Empty(t, h.remote.calls)
	require.Len(t, h.confirm.prompts, 1)
	assert.Contains(t, h.confirm.prompts[0].Body, "Antony 雙人床架")
	assert.Equal(t, st, next)
}

func TestDecreaseQuantityToZeroConfirmedDeletes(t *testing.T) {
	h := newHarness(true)
	st := State{Cart: cartWith(item("c1", "p1", 1))}

	next, err := h.d.Dispatch(context.Background(), st, ChangeQuantity{CartItemID: "c1", Delta: -1})

	require.NoError(t, err)
	assert.Equal(t, []call{{Method: "DeleteCartItem", ID: "c1"}}, h.remote.mutations())
	assert.Equal(t, 0, h.remote.count("UpdateCartItem"))
	assert.True(t, next.Cart.IsEmpty())
}

func TestIncreaseQuantityUpdates(t *testing.T) {
	h := newHarness(true)
	st := State{Cart: cartWith(item("c1", "p1", 1))}

	_, err := h.d.Dispatch(context.Background(), st, ChangeQuantity{CartItemID: "c1", Delta: 1})

	require.NoError(t, err)
	assert.Equal(t, []call{{Method: "UpdateCartItem", ID: "c1", Quantity: 2}}, h.remote.mutations())
	assert.Empty(t, h.confirm.prompts)
}

func TestRemoveFromCartDeletesWithoutConfirmation(t *testing.T) {
	h := newHarness(false)
	st := State{Cart: cartWith(item("c1", "p1", 3))}

	_, err := h.d.Dispatch(context.Background(), st, RemoveFromCart{CartItemID: "c1"})

	require.NoError(t, err)
	assert.Equal(t, []call{{Method: "DeleteCartItem", ID: "c1"}}, h.remote.mutations())
	assert.Empty(t, h.confirm.prompts)
}

func TestClearEmptyCartWarnsWithoutRemoteCalls(t *testing.T) {
	h := newHarness(true)

	next, err := h.d.Dispatch(context.Background(), State{}, ClearCart{})

	assert.ErrorIs(t, err, cart.ErrCartEmpty)
	assert.Empty(t, h.remote.calls)
	assert.Equal(t, []string{"Your cart is already empty"}, h.notifier.warnings)
	assert.Empty(t, h.notifier.errors)
	assert.Empty(t, h.confirm.prompts)
	assert.Equal(t, State{}, next)
}

func TestClearCartDeclined(t *testing.T) {
	h := newHarness(false)
	st := State{Cart: cartWith(item("c1", "p1", 1))}

	_, err := h.d.Dispatch(context.Background(), st, ClearCart{})

	require.NoError(t, err)
	assert.Empty(t, h.remote.calls)
	assert.Empty(t, h.notifier.successes)
}

func TestClearCartConfirmed(t *testing.T) {
	h := newHarness(true)
	st := State{Cart: cartWith(item("c1", "p1", 1))}

	next, err := h.d.Dispatch(context.Background(), st, ClearCart{})

	require.NoError(t, err)
	assert.Equal(t, []call{{Method: "ClearCart"}}, h.remote.mutations())
	assert.True(t, next.Cart.IsEmpty())
	assert.Equal(t, []string{"Cart cleared"}, h.notifier.successes)
}

func TestRemoteFailureKeepsPriorStateAndReportsError(t *testing.T) {
	h := newHarness(true)
	h.remote.failOn["UpdateCartItem"] = errRemote
	st := State{Cart: cartWith(item("c1", "p1", 2))}

	next, err := h.d.Dispatch(context.Background(), st, AddToCart{ProductID: "p1"})

	assert.ErrorIs(t, err, errRemote)
	assert.Equal(t, st, next)
	assert.Equal(t, 0, h.remote.count("ListCart"))
	assert.Equal(t, []string{"Could not add to cart, please try again"}, h.notifier.errors)
	assert.Empty(t, h.notifier.successes)
}

func TestRefetchFailureKeepsPriorState(t *testing.T) {
	h := newHarness(true)
	h.remote.failOn["ListCart"] = errRemote
	st := State{Cart: cartWith(item("c1", "p1", 2))}

	next, err := h.d.Dispatch(context.Background(), st, ChangeQuantity{CartItemID: "c1", Delta: 1})

	assert.ErrorIs(t, err, errRemote)
	assert.Equal(t, st, next)
	assert.Len(t, h.notifier.errors, 1)
}

func TestChangeQuantityUnknownItemWarns(t *testing.T) {
	h := newHarness(true)

	_, err := h.d.Dispatch(context.Background(), State{}, ChangeQuantity{CartItemID: "gone", Delta: 1})

	assert.ErrorIs(t, err, cart.ErrItemNotInCart)
	assert.Empty(t, h.remote.calls)
	assert.Len(t, h.notifier.warnings, 1)
}

func TestLoadStorefrontReplacesProductsAndCart(t *testing.T) {
	h := newHarness(true)
	h.remote.products = []models.Product{{ID: "p1", Category: "床架"}, {ID: "p2", Category: "收納"}}
	h.remote.cart = cartWith(item("c1", "p1", 1))
	st := State{Products: []models.Product{{ID: "stale"}}, Category: "床架"}

	next, err := h.d.Dispatch(context.Background(), st, LoadStorefront{})

	require.NoError(t, err)
	assert.Equal(t, h.remote.products, next.Products)
	assert.Equal(t, h.remote.cart, next.Cart)
	assert.Equal(t, []models.Product{{ID: "p1", Category: "床架"}}, next.VisibleProducts())
}

func TestLoadStorefrontFailure(t *testing.T) {
	h := newHarness(true)
	h.remote.failOn["ListProducts"] = errRemote

	_, err := h.d.Dispatch(context.Background(), State{}, LoadStorefront{})

	assert.ErrorIs(t, err, errRemote)
	assert.Equal(t, []string{"Could not load products"}, h.notifier.errors)
}

func TestFilterCategoryMakesNoRemoteCall(t *testing.T) {
	h := newHarness(true)

	next, err := h.d.Dispatch(context.Background(), State{}, FilterCategory{Category: "收納"})

	require.NoError(t, err)
	assert.Equal(t, "收納", next.Category)
	assert.Empty(t, h.remote.calls)
}

func validOrderForm() validation.OrderForm {
	return validation.OrderForm{Name: " 六角學院 ", Tel: "0912345678", Email: "hexschool@hexschool.com", Address: "高雄市六角學院路", Payment: "Apple Pay"}
}

func TestSubmitOrderCreatesOrderAndRefetchesCart(t *testing.T) {
	h := newHarness(true)
	st := State{Cart: cartWith(item("c1", "p1", 1))}

	next, err := h.d.Dispatch(context.Background(), st, SubmitOrder{Form: validOrderForm()})

	require.NoError(t, err)
	assert.Equal(t, []call{{Method: "CreateOrder"}}, h.remote.mutations())
	assert.Equal(t, "六角學院", h.remote.created.Name)
	assert.Equal(t, "Apple Pay", h.remote.created.Payment)
	assert.True(t, next.Cart.IsEmpty())
	assert.Equal(t, []string{"Order submitted"}, h.notifier.successes)
}

func TestSubmitOrderInvalidFormNeverCallsRemote(t *testing.T) {
	h := newHarness(true)
	st := State{Cart: cartWith(item("c1", "p1", 1))}
	form := validOrderForm()
	form.Tel = "12345"

	_, err := h.d.Dispatch(context.Background(), st, SubmitOrder{Form: form})

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Len(t, vErr.Result.Errors, 1)
	assert.Equal(t, validation.FieldPhone, vErr.Result.Errors[0].Field)
	assert.Empty(t, h.remote.calls)
}

func TestSubmitOrderEmptyCartWarns(t *testing.T) {
	h := newHarness(true)

	_, err := h.d.Dispatch(context.Background(), State{}, SubmitOrder{Form: validOrderForm()})

	assert.ErrorIs(t, err, cart.ErrCartEmpty)
	assert.Empty(t, h.remote.calls)
	assert.Len(t, h.notifier.warnings, 1)
}

func TestToggleOrderPaidFlipsFlag(t *testing.T) {
	h := newHarness(true)
	st := State{Orders: []models.Order{{ID: "o1", Paid: false}}}
	h.remote.orders = []models.Order{{ID: "o1", Paid: true}}

	next, err := h.d.Dispatch(context.Background(), st, ToggleOrderPaid{OrderID: "o1"})

	require.NoError(t, err)
	assert.Equal(t, []call{{Method: "SetOrderPaid", ID: "o1", Paid: true}}, h.remote.mutations())
	assert.True(t, next.Orders[0].Paid)
}

func TestToggleUnknownOrderWarns(t *testing.T) {
	h := newHarness(true)

	_, err := h.d.Dispatch(context.Background(), State{}, ToggleOrderPaid{OrderID: "o1"})

	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Empty(t, h.remote.calls)
}

func TestDeleteOrderDeclinedMakesNoCall(t *testing.T) {
	h := newHarness(false)
	st := State{Orders: []models.Order{{ID: "o1"}}}

	next, err := h.d.Dispatch(context.Background(), st, DeleteOrder{OrderID: "o1"})

	require.NoError(t, err)
	assert.Empty(t, h.remote.calls)
	assert.Equal(t, st, next)
}

func TestDeleteOrderConfirmed(t *testing.T) {
	h := newHarness(true)
	st := State{Orders: []models.Order{{ID: "o1"}, {ID: "o2"}}}
	h.remote.orders = []models.Order{{ID: "o2"}}

	next, err := h.d.Dispatch(context.Background(), st, DeleteOrder{OrderID: "o1"})

	require.NoError(t, err)
	assert.Equal(t, []call{{Method: "DeleteOrder", ID: "o1"}}, h.remote.mutations())
	assert.Equal(t, h.remote.orders, next.Orders)
}

func TestDeleteAllOrdersWithNoOrdersWarns(t *testing.T) {
	h := newHarness(true)

	_, err := h.d.Dispatch(context.Background(), State{}, DeleteAllOrders{})

	assert.ErrorIs(t, err, ErrNoOrders)
	assert.Empty(t, h.remote.calls)
	assert.Empty(t, h.confirm.prompts)
}

func TestDeleteAllOrdersConfirmed(t *testing.T) {
	h := newHarness(true)
	st := State{Orders: []models.Order{{ID: "o1"}, {ID: "o2"}}}

	next, err := h.d.Dispatch(context.Background(), st, DeleteAllOrders{})

	require.NoError(t, err)
	assert.Equal(t, []call{{Method: "DeleteAllOrders"}}, h.remote.mutations())
	assert.Empty(t, next.Orders)
	assert.Equal(t, []string{"All orders deleted"}, h.notifier.successes)
}

func TestCategories(t *testing.T) {
	products := []models.Product{{Category: "床架"}, {Category: "收納"}, {Category: "床架"}, {Category: ""}}
	assert.Equal(t, []string{"床架", "收納"}, Categories(products))
	assert.Len(t, FilterProducts(products, AllCategories), 4)
	assert.Len(t, FilterProducts(products, "床架"), 2)
}
