package handlers

import (
	"encoding/gob"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"storefront/internal/logger"
)

// SessionName is the signed cookie carrying flash messages.
const SessionName = "storefront"

// Flash levels, used as toast classes in templates.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
)

type flashMessage struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func init() {
	gob.Register(flashMessage{})
}

// FlashSessions installs the cookie session store that flash messages
// live in. secret signs the cookie.
func FlashSessions(secret []byte) gin.HandlerFunc {
	store := cookie.NewStore(secret)
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(SessionName, store)
}

// flashNotifier collects notifications during a request and hands them to
// the next page through the session.
type flashNotifier struct {
	messages []flashMessage
}

func (n *flashNotifier) Success(message string) { n.add(FlashSuccess, message) }
func (n *flashNotifier) Error(message string)   { n.add(FlashError, message) }
func (n *flashNotifier) Warning(message string) { n.add(FlashWarning, message) }

func (n *flashNotifier) add(level, message string) {
	n.messages = append(n.messages, flashMessage{Level: level, Message: message})
}

func (n *flashNotifier) save(c *gin.Context) {
	if len(n.messages) == 0 {
		return
	}
	session := sessions.Default(c)
	for _, m := range n.messages {
		session.AddFlash(m)
	}
	if err := session.Save(); err != nil {
		logger.WithArea("HTTP").WithError(err).Error("flash save failed")
	}
}

// popFlash reads and clears pending flash messages.
func popFlash(c *gin.Context) []flashMessage {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		logger.WithArea("HTTP").WithError(err).Error("flash clear failed")
	}

	messages := make([]flashMessage, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(flashMessage); ok {
			messages = append(messages, m)
		}
	}
	return messages
}
