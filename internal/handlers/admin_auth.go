package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/logger"
	"storefront/internal/middleware"
)

// AdminLoginRequest is the posted login form.
type AdminLoginRequest struct {
	Password string `form:"password" json:"password"`
}

// AdminLogin checks the dashboard password against passwordHash and sets a
// signed session cookie valid for accessTTL.
func AdminLogin(jwtSecret, passwordHash string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "POST /admin/login")
		log := logger.WithArea("AUTH")

		var req AdminLoginRequest
		if err := c.ShouldBind(&req); err != nil || strings.TrimSpace(req.Password) == "" {
			rejectLogin(c, "Password is required")
			return
		}

		if passwordHash == "" || jwtSecret == "" {
			log.Warn("dashboard login attempted but admin credentials are not configured")
			rejectLogin(c, "Dashboard login is disabled")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
			log.WithField("client_ip", c.ClientIP()).Warn("invalid dashboard password")
			rejectLogin(c, "Invalid credentials")
			return
		}

		signed, err := issueAdminToken(jwtSecret, accessTTL)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, "POST /admin/login", "token generation failed")
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.AdminCookie, signed, int(accessTTL.Seconds()), "/admin", "", false, true)
		c.Redirect(http.StatusSeeOther, "/admin/orders")
	}
}

// AdminLogout drops the session cookie.
func AdminLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(middleware.AdminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusSeeOther, "/admin/login")
	}
}

func issueAdminToken(secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func rejectLogin(c *gin.Context, message string) {
	flash := &flashNotifier{}
	flash.Warning(message)
	flash.save(c)
	c.Redirect(http.StatusSeeOther, "/admin/login")
}
