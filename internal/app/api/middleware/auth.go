package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"github.com/mossleaf/homeops/internal/app/service/household"
	"github.com/mossleaf/homeops/pkg/config"
	"github.com/mossleaf/homeops/pkg/response"
)

// AuthMiddleware verifies the Bearer token minted by the hosted auth service
// (HS256, shared secret) and stores the subject as userID. It does not look
// at profiles; use RequireProfile for household scoping.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if raw == "" || raw == c.GetHeader("Authorization") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "missing bearer token"))
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(cfg.Auth.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "invalid token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "invalid claims"))
			return
		}
		sub, _ := claims["sub"].(string)
		if sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "token has no subject"))
			return
		}

		c.Set("userID", sub)
		ctx := context.WithValue(c.Request.Context(), "user_id", sub)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireProfile resolves the caller's profile and exposes profile and
// householdID to handlers. Callers without a profile (not yet registered or
// joined) get a 403.
func RequireProfile(hh *household.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		profile, err := hh.GetProfile(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorT[any](response.APIResponseCodeForbidden, "no household profile"))
			return
		}
		c.Set("profile", profile)
		c.Set("householdID", profile.HouseholdID)
		ctx := context.WithValue(c.Request.Context(), "household_id", profile.HouseholdID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. Must run after RequireProfile.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := ProfileFrom(c)
		if p == nil || !p.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorT[any](response.APIResponseCodeForbidden, "admin role required"))
			return
		}
		c.Next()
	}
}
