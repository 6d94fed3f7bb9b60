package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mossleaf/homeops/internal/models"
)

// ProfileFrom returns the caller's profile set by RequireProfile, or nil.
func ProfileFrom(c *gin.Context) *models.Profile {
	if v, ok := c.Get("profile"); ok {
		if p, ok := v.(*models.Profile); ok {
			return p
		}
	}
	return nil
}

// HouseholdIDFrom returns the caller's household id set by RequireProfile.
func HouseholdIDFrom(c *gin.Context) string {
	return c.GetString("householdID")
}
