package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/shop"
	"storefront/internal/validation"
)

// SubmitOrder places an order for the current cart. An invalid form is
// rendered again with its field errors.
func SubmitOrder(remote shop.Remote) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "POST /orders")

		var form validation.OrderForm
		if err := c.ShouldBind(&form); err != nil {
			respondWithError(c, http.StatusBadRequest, "POST /orders", "invalid form")
			return
		}

		s := newSession(c, remote)
		ctx := c.Request.Context()

		st, err := s.dispatcher.Dispatch(ctx, shop.State{}, shop.LoadStorefront{})
		if err != nil {
			s.finish(c, "/")
			return
		}

		_, err = s.dispatcher.Dispatch(ctx, st, shop.SubmitOrder{Form: form})
		var invalid *shop.ValidationError
		if errors.As(err, &invalid) {
			renderStorefront(c, http.StatusUnprocessableEntity, storefrontView{
				State:   st,
				Form:    form,
				Result:  invalid.Result,
				Flashes: s.flash.messages,
			})
			return
		}
		s.finish(c, "/")
	}
}
