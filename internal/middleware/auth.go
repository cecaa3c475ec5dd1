package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/logger"
)

// AdminCookie carries the dashboard session token.
const AdminCookie = "admin_token"

var errMissingToken = errors.New("missing token")

// tokenFromRequest reads a bearer token from the Authorization header,
// falling back to the session cookie.
func tokenFromRequest(c *gin.Context) (string, error) {
	raw := strings.TrimSpace(c.GetHeader("Authorization"))
	if raw != "" {
		parts := strings.Split(raw, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", errors.New("invalid token format")
		}
		return parts[1], nil
	}

	cookie, err := c.Cookie(AdminCookie)
	if err != nil || strings.TrimSpace(cookie) == "" {
		return "", errMissingToken
	}
	return cookie, nil
}

func parseClaims(raw, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

func hasRole(claims jwt.MapClaims, allowedRoles []string) bool {
	if len(allowedRoles) == 0 {
		return true
	}
	role, _ := claims["role"].(string)
	for _, r := range allowedRoles {
		if role == r {
			return true
		}
	}
	return false
}

// AuthGuard rejects requests without a valid token carrying one of
// allowedRoles. Failures are answered with JSON.
func AuthGuard(secret string, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := tokenFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		claims, err := parseClaims(raw, secret)
		if err != nil {
			logger.WithArea("AUTH").WithError(err).Warn("token validation failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if !hasRole(claims, allowedRoles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// AdminAuth guards the dashboard JSON endpoints.
func AdminAuth(secret string) gin.HandlerFunc {
	return AuthGuard(secret, "admin")
}

// AdminPageAuth guards dashboard pages, redirecting to the login page
// instead of answering with JSON.
func AdminPageAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := tokenFromRequest(c)
		if err == nil {
			var claims jwt.MapClaims
			claims, err = parseClaims(raw, secret)
			if err == nil && hasRole(claims, []string{"admin"}) {
				c.Set("claims", claims)
				c.Next()
				return
			}
		}

		logger.WithArea("AUTH").WithField("path", c.Request.URL.Path).Info("dashboard login required")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		c.Abort()
	}
}
