package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/logger"
	"storefront/internal/shop"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		logger.WithArea("HTTP").WithField("route", route).Errorf("panic recovered: %v", r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	logger.WithArea("HTTP").WithField("route", route).Warnf("returning error %d: %s", status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// session is the per-request wiring of a dispatcher to the browser: flash
// cookies for notifications and an interstitial page for confirmations.
type session struct {
	dispatcher *shop.Dispatcher
	flash      *flashNotifier
	confirm    *formConfirmer
}

func newSession(c *gin.Context, remote shop.Remote) *session {
	flash := &flashNotifier{}
	confirm := &formConfirmer{c: c}
	return &session{
		dispatcher: shop.NewDispatcher(remote, flash, confirm),
		flash:      flash,
		confirm:    confirm,
	}
}

// finish either shows the pending confirmation page or stores the flash
// messages and redirects to target.
func (s *session) finish(c *gin.Context, target string) {
	if s.confirm.pending != nil {
		renderConfirm(c, *s.confirm.pending, target)
		return
	}
	s.flash.save(c)
	c.Redirect(http.StatusSeeOther, target)
}

// storefrontURL keeps the selected category across form posts.
func storefrontURL(category string) string {
	category = strings.TrimSpace(category)
	if category == "" || category == shop.AllCategories {
		return "/"
	}
	return "/?" + url.Values{"category": {category}}.Encode()
}
