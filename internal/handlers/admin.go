package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminLoginPage renders the dashboard login form.
func AdminLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flashes": popFlash(c),
	})
}
