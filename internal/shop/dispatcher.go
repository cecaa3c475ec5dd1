package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"storefront/internal/cart"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/validation"
)

var (
	ErrUnknownIntent = errors.New("unknown intent")
	ErrOrderNotFound = errors.New("order not found")
	ErrNoOrders      = errors.New("no orders")
)

// ValidationError carries field errors for a rejected checkout form.
type ValidationError struct {
	Result validation.Result
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Result.Errors))
	for _, fe := range e.Result.Errors {
		fields = append(fields, fe.Field)
	}
	return "order form is invalid: " + strings.Join(fields, ", ")
}

// Dispatcher applies intents: plan, confirm if destructive, mutate
// remotely, then re-fetch. Failures are logged and reported through the
// Notifier and the previous state is returned.
type Dispatcher struct {
	remote  Remote
	notify  Notifier
	confirm Confirmer
	log     *logrus.Entry
}

// NewDispatcher builds a Dispatcher.
func NewDispatcher(remote Remote, notify Notifier, confirm Confirmer) *Dispatcher {
	return &Dispatcher{
		remote:  remote,
		notify:  notify,
		confirm: confirm,
		log:     logger.WithArea("SHOP"),
	}
}

// Dispatch handles one intent against st. The returned error is already
// surfaced to the user; callers only need it for flow control.
func (d *Dispatcher) Dispatch(ctx context.Context, st State, in Intent) (State, error) {
	switch in := in.(type) {
	case LoadStorefront:
		return d.loadStorefront(ctx, st, in)
	case RefreshCart:
		return d.refreshCart(ctx, st, in)
	case FilterCategory:
		return st.WithCategory(in.Category), nil
	case AddToCart:
		return d.addToCart(ctx, st, in)
	case RemoveFromCart:
		return d.applyCart(ctx, st, in, cart.PlanRemove(in.CartItemID), "Item removed from cart", "Could not remove the item, please try again")
	case ChangeQuantity:
		return d.changeQuantity(ctx, st, in)
	case ClearCart:
		return d.clearCart(ctx, st, in)
	case SubmitOrder:
		return d.submitOrder(ctx, st, in)
	case RefreshOrders:
		return d.refreshOrders(ctx, st, in)
	case ToggleOrderPaid:
		return d.toggleOrderPaid(ctx, st, in)
	case DeleteOrder:
		return d.deleteOrder(ctx, st, in)
	case DeleteAllOrders:
		return d.deleteAllOrders(ctx, st, in)
	default:
		return st, fmt.Errorf("%w: %T", ErrUnknownIntent, in)
	}
}

func (d *Dispatcher) fail(st State, in Intent, message string, err error) (State, error) {
	d.log.WithField("intent", in.Name()).WithError(err).Error(message)
	d.notify.Error(message)
	return st, err
}

func (d *Dispatcher) warn(st State, in Intent, message string, err error) (State, error) {
	d.log.WithField("intent", in.Name()).Warn(message)
	d.notify.Warning(message)
	return st, err
}

/* =========================
   STOREFRONT
========================= */

func (d *Dispatcher) loadStorefront(ctx context.Context, st State, in Intent) (State, error) {
	products, err := d.remote.ListProducts(ctx)
	if err != nil {
		return d.fail(st, in, "Could not load products", err)
	}
	next := st.WithProducts(products)

	c, err := d.remote.ListCart(ctx)
	if err != nil {
		return d.fail(next, in, "Could not load your cart", err)
	}
	return next.WithCart(c), nil
}

func (d *Dispatcher) refreshCart(ctx context.Context, st State, in Intent) (State, error) {
	c, err := d.remote.ListCart(ctx)
	if err != nil {
		return d.fail(st, in, "Could not load your cart", err)
	}
	return st.WithCart(c), nil
}

func (d *Dispatcher) addToCart(ctx context.Context, st State, in AddToCart) (State, error) {
	m, err := cart.PlanAdd(st.Cart.Items, in.ProductID)
	if err != nil {
		return d.warn(st, in, "Choose a product to add", err)
	}
	return d.applyCart(ctx, st, in, m, "Added to cart", "Could not add to cart, please try again")
}

func (d *Dispatcher) changeQuantity(ctx context.Context, st State, in ChangeQuantity) (State, error) {
	m, err := cart.PlanQuantityChange(st.Cart.Items, in.CartItemID, in.Delta)
	if err != nil {
		return d.warn(st, in, "That item is no longer in your cart", err)
	}

	if m.Kind == cart.KindConfirmRemove {
		item, _ := cart.FindByID(st.Cart.Items, in.CartItemID)
		ok := d.confirm.Confirm(ctx, Prompt{
			Title:        "Remove item?",
			Body:         fmt.Sprintf("Remove %s from your cart?", item.Product.Title),
			ConfirmLabel: "Remove",
			CancelLabel:  "Keep",
		})
		if !ok {
			return st, nil
		}
		return d.applyCart(ctx, st, in, cart.PlanRemove(in.CartItemID), "Item removed from cart", "Could not remove the item, please try again")
	}

	return d.applyCart(ctx, st, in, m, "Cart updated", "Could not update the quantity, please try again")
}

func (d *Dispatcher) clearCart(ctx context.Context, st State, in ClearCart) (State, error) {
	m, err := cart.PlanClear(st.Cart.Items)
	if err != nil {
		return d.warn(st, in, "Your cart is already empty", err)
	}

	ok := d.confirm.Confirm(ctx, Prompt{
		Title:        "Clear cart?",
		Body:         "Every item will be removed from your cart.",
		ConfirmLabel: "Clear",
		CancelLabel:  "Cancel",
	})
	if !ok {
		return st, nil
	}
	return d.applyCart(ctx, st, in, m, "Cart cleared", "Could not clear the cart, please try again")
}

// applyCart executes one planned mutation and re-fetches the cart.
func (d *Dispatcher) applyCart(ctx context.Context, st State, in Intent, m cart.Mutation, success, failure string) (State, error) {
	var err error
	switch m.Kind {
	case cart.KindCreate:
		err = d.remote.AddCartItem(ctx, m.ProductID, m.Quantity)
	case cart.KindUpdate:
		err = d.remote.UpdateCartItem(ctx, m.CartItemID, m.Quantity)
	case cart.KindDelete:
		err = d.remote.DeleteCartItem(ctx, m.CartItemID)
	case cart.KindClear:
		err = d.remote.ClearCart(ctx)
	default:
		err = fmt.Errorf("cannot execute %s mutation", m.Kind)
	}
	if err != nil {
		return d.fail(st, in, failure, err)
	}

	c, err := d.remote.ListCart(ctx)
	if err != nil {
		return d.fail(st, in, "Could not reload your cart", err)
	}

	d.log.WithFields(logrus.Fields{
		"intent":   in.Name(),
		"mutation": m.Kind.String(),
		"items":    len(c.Items),
	}).Info("cart updated")
	d.notify.Success(success)
	return st.WithCart(c), nil
}

/* =========================
   CHECKOUT
========================= */

func (d *Dispatcher) submitOrder(ctx context.Context, st State, in SubmitOrder) (State, error) {
	if st.Cart.IsEmpty() {
		return d.warn(st, in, "Your cart is empty, add products before checking out", cart.ErrCartEmpty)
	}

	result := validation.ValidateOrderForm(in.Form)
	if !result.IsValid {
		err := &ValidationError{Result: result}
		d.log.WithField("intent", in.Name()).Info(err.Error())
		return st, err
	}

	user := models.OrderUser{
		Name:    strings.TrimSpace(in.Form.Name),
		Tel:     strings.TrimSpace(in.Form.Tel),
		Email:   strings.TrimSpace(in.Form.Email),
		Address: strings.TrimSpace(in.Form.Address),
		Payment: validation.NormalizePayment(in.Form.Payment),
	}

	order, err := d.remote.CreateOrder(ctx, user)
	if err != nil {
		return d.fail(st, in, "Could not submit the order, please try again", err)
	}
	d.log.WithField("order_id", order.ID).Info("order created")

	c, err := d.remote.ListCart(ctx)
	if err != nil {
		return d.fail(st, in, "Could not reload your cart", err)
	}
	d.notify.Success("Order submitted")
	return st.WithCart(c), nil
}

/* =========================
   DASHBOARD
========================= */

func (d *Dispatcher) refreshOrders(ctx context.Context, st State, in Intent) (State, error) {
	orders, err := d.remote.ListOrders(ctx)
	if err != nil {
		return d.fail(st, in, "Could not load orders", err)
	}
	return st.WithOrders(orders), nil
}

func (d *Dispatcher) toggleOrderPaid(ctx context.Context, st State, in ToggleOrderPaid) (State, error) {
	order, ok := st.FindOrder(in.OrderID)
	if !ok {
		return d.warn(st, in, "That order no longer exists", ErrOrderNotFound)
	}

	if err := d.remote.SetOrderPaid(ctx, order.ID, !order.Paid); err != nil {
		return d.fail(st, in, "Could not update the order status", err)
	}
	return d.afterOrderMutation(ctx, st, in, "Order status updated")
}

func (d *Dispatcher) deleteOrder(ctx context.Context, st State, in DeleteOrder) (State, error) {
	order, ok := st.FindOrder(in.OrderID)
	if !ok {
		return d.warn(st, in, "That order no longer exists", ErrOrderNotFound)
	}

	ok = d.confirm.Confirm(ctx, Prompt{
		Title:        "Delete order?",
		Body:         fmt.Sprintf("Order %s from %s will be deleted.", order.ID, order.User.Name),
		ConfirmLabel: "Delete",
		CancelLabel:  "Cancel",
	})
	if !ok {
		return st, nil
	}

	if err := d.remote.DeleteOrder(ctx, order.ID); err != nil {
		return d.fail(st, in, "Could not delete the order", err)
	}
	return d.afterOrderMutation(ctx, st, in, "Order deleted")
}

func (d *Dispatcher) deleteAllOrders(ctx context.Context, st State, in DeleteAllOrders) (State, error) {
	if len(st.Orders) == 0 {
		return d.warn(st, in, "There are no orders to delete", ErrNoOrders)
	}

	ok := d.confirm.Confirm(ctx, Prompt{
		Title:        "Delete all orders?",
		Body:         fmt.Sprintf("All %d orders will be deleted.", len(st.Orders)),
		ConfirmLabel: "Delete all",
		CancelLabel:  "Cancel",
	})
	if !ok {
		return st, nil
	}

	if err := d.remote.DeleteAllOrders(ctx); err != nil {
		return d.fail(st, in, "Could not delete the orders", err)
	}
	return d.afterOrderMutation(ctx, st, in, "All orders deleted")
}

func (d *Dispatcher) afterOrderMutation(ctx context.Context, st State, in Intent, success string) (State, error) {
	orders, err := d.remote.ListOrders(ctx)
	if err != nil {
		return d.fail(st, in, "Could not reload orders", err)
	}
	d.log.WithFields(logrus.Fields{
		"intent": in.Name(),
		"orders": len(orders),
	}).Info("orders updated")
	d.notify.Success(success)
	return st.WithOrders(orders), nil
}
