package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/shop"
	"storefront/internal/validation"
)

/* =========================
   STOREFRONT PAGE
========================= */

type storefrontView struct {
	State   shop.State
	Form    validation.OrderForm
	Result  validation.Result
	Flashes []flashMessage
}

func renderStorefront(c *gin.Context, status int, v storefrontView) {
	c.HTML(status, "index.html", gin.H{
		"Products":   v.State.VisibleProducts(),
		"Categories": append([]string{shop.AllCategories}, shop.Categories(v.State.Products)...),
		"Category":   v.State.Category,
		"Cart":       v.State.Cart,
		"Form":       v.Form,
		"Errors":     v.Result,
		"Flashes":    v.Flashes,
		"Payments":   validation.PaymentMethods,
	})
}

// Storefront renders products, the cart and the checkout form.
func Storefront(remote shop.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "GET /")

		s := newSession(c, remote)
		st, _ := s.dispatcher.Dispatch(c.Request.Context(), shop.State{}, shop.LoadStorefront{})
		st, _ = s.dispatcher.Dispatch(c.Request.Context(), st, shop.FilterCategory{Category: c.Query("category")})

		renderStorefront(c, http.StatusOK, storefrontView{
			State:   st,
			Form:    validation.OrderForm{Payment: validation.DefaultPayment},
			Flashes: append(popFlash(c), s.flash.messages...),
		})
	}
}

/* =========================
   CART
========================= */

// loadCart runs intent against a freshly fetched cart, then redirects
// back to the storefront.
func loadCart(c *gin.Context, remote shop.Remote, intent shop.Intent) {
	s := newSession(c, remote)
	target := storefrontURL(c.PostForm("category"))

	st, err := s.dispatcher.Dispatch(c.Request.Context(), shop.State{}, shop.RefreshCart{})
	if err == nil {
		_, _ = s.dispatcher.Dispatch(c.Request.Context(), st, intent)
	}
	s.finish(c, target)
}

// AddCartItem adds one unit of the posted product.
func AddCartItem(remote shop.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "POST /cart/items")
		loadCart(c, remote, shop.AddToCart{ProductID: strings.TrimSpace(c.PostForm("productId"))})
	}
}

// ChangeCartQuantity moves an item's quantity by the posted delta.
func ChangeCartQuantity(remote shop.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "POST /cart/items/:id/quantity")

		delta, err := strconv.Atoi(strings.TrimSpace(c.PostForm("delta")))
		if err != nil || delta == 0 {
			respondWithError(c, http.StatusBadRequest, "POST /cart/items/:id/quantity", "invalid delta")
			return
		}
		loadCart(c, remote, shop.ChangeQuantity{CartItemID: c.Param("id"), Delta: delta})
	}
}

// RemoveCartItem deletes one cart item.
func RemoveCartItem(remote shop.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "POST /cart/items/:id/delete")
		loadCart(c, remote, shop.RemoveFromCart{CartItemID: c.Param("id")})
	}
}

// ClearCart empties the cart after confirmation.
func ClearCart(remote shop.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "POST /cart/clear")
		loadCart(c, remote, shop.ClearCart{})
	}
}
