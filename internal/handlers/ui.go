package handlers

import "github.com/gin-gonic/gin"

// AdminHome sends dashboard visitors to the order list.
func AdminHome() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(302, "/admin/orders")
	}
}
