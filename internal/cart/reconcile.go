// Package cart turns cart intents into the remote mutation that carries
// them out. Planning is pure; callers execute the mutation and re-fetch.
package cart

import (
	"errors"

	"storefront/internal/models"
)

// Kind identifies a remote cart operation.
type Kind int

const (
	KindCreate Kind = iota + 1
	KindUpdate
	KindDelete
	KindClear
	// KindConfirmRemove means the quantity would drop to zero; the caller must
	// ask for confirmation and then delete instead of updating.
	KindConfirmRemove
)

func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	case KindClear:
		return "clear"
	case KindConfirmRemove:
		return "confirm-remove"
	default:
		return "unknown"
	}
}

var (
	ErrCartEmpty      = errors.New("cart is empty")
	ErrItemNotInCart  = errors.New("item not in cart")
	ErrInvalidDelta   = errors.New("quantity delta must not be zero")
	ErrProductMissing = errors.New("product id is required")
)

// Mutation is a single remote cart operation.
type Mutation struct {
	Kind       Kind
	ProductID  string
	CartItemID string
	Quantity   int
}

// FindByProduct returns the cart item referencing productID.
func FindByProduct(items []models.CartItem, productID string) (models.CartItem, bool) {
	for _, item := range items {
		if item.Product.ID == productID {
			return item, true
		}
	}
	return models.CartItem{}, false
}

// FindByID returns the cart item with the given cart item id.
func FindByID(items []models.CartItem, cartItemID string) (models.CartItem, bool) {
	for _, item := range items {
		if item.ID == cartItemID {
			return item, true
		}
	}
	return models.CartItem{}, false
}

// PlanAdd bumps an existing line for productID by one, or creates it with
// quantity 1.
func PlanAdd(items []models.CartItem, productID string) (Mutation, error) {
	if productID == "" {
		return Mutation{}, ErrProductMissing
	}
	if existing, ok := FindByProduct(items, productID); ok {
		return Mutation{
			Kind:       KindUpdate,
			ProductID:  productID,
			CartItemID: existing.ID,
			Quantity:   existing.Quantity + 1,
		}, nil
	}
	return Mutation{Kind: KindCreate, ProductID: productID, Quantity: 1}, nil
}

// PlanQuantityChange applies delta to the cart item. A result of zero or
// less never becomes an update.
func PlanQuantityChange(items []models.CartItem, cartItemID string, delta int) (Mutation, error) {
	if delta == 0 {
		return Mutation{}, ErrInvalidDelta
	}
	current, ok := FindByID(items, cartItemID)
	if !ok {
		return Mutation{}, ErrItemNotInCart
	}

	newQuantity := current.Quantity + delta
	if newQuantity <= 0 {
		return Mutation{
			Kind:       KindConfirmRemove,
			ProductID:  current.Product.ID,
			CartItemID: current.ID,
		}, nil
	}
	return Mutation{
		Kind:       KindUpdate,
		ProductID:  current.Product.ID,
		CartItemID: current.ID,
		Quantity:   newQuantity,
	}, nil
}

// PlanRemove deletes a cart item by id.
func PlanRemove(cartItemID string) Mutation {
	return Mutation{Kind: KindDelete, CartItemID: cartItemID}
}

// PlanClear empties the cart. An empty cart is a precondition failure.
func PlanClear(items []models.CartItem) (Mutation, error) {
	if len(items) == 0 {
		return Mutation{}, ErrCartEmpty
	}
	return Mutation{Kind: KindClear}, nil
}

// Count is the total quantity across all cart items.
func Count(items []models.CartItem) int {
	n := 0
	for _, item := range items {
		n += item.Quantity
	}
	return n
}

// Subtotal sums effective price times quantity.
func Subtotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Product.EffectivePrice() * float64(item.Quantity)
	}
	return total
}
