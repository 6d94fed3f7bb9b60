package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/mossleaf/homeops/internal/app/api/middleware"
	"github.com/mossleaf/homeops/internal/app/service/household"
	"github.com/mossleaf/homeops/pkg/response"
)

type CreateInviteRequest struct {
	Email *string `json:"email"`
}

// InvitePreview is the public view of an invite shown on the join page.
type InvitePreview struct {
	HouseholdID   string  `json:"household_id"`
	HouseholdName string  `json:"household_name"`
	Email         *string `json:"email"`
}

type JoinRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

// @Summary      Create an invite link
// @Tags         Invites
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.APIResponse[models.Invite]
// @Router       /api/v1/invites [post]
func apiCreateInvite(hh *household.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateInviteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		inv, err := hh.CreateInvite(c.Request.Context(), mw.HouseholdIDFrom(c), req.Email)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(inv))
	}
}

// @Summary      Preview an invite
// @Description  Public lookup used by the join page; valid unused tokens only
// @Tags         Invites
// @Produce      json
// @Param        token  path  string  true  "invite token"
// @Success      200  {object}  response.APIResponse[InvitePreview]
// @Router       /api/v1/invites/{token} [get]
func apiGetInvite(hh *household.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		inv, err := hh.GetInviteByToken(c.Request.Context(), c.Param("token"))
		if err != nil {
			writeError(c, err)
			return
		}
		preview := InvitePreview{HouseholdID: inv.HouseholdID, Email: inv.Email}
		if h, err := hh.GetHousehold(c.Request.Context(), inv.HouseholdID); err == nil {
			preview.HouseholdName = h.Name
		}
		c.JSON(http.StatusOK, response.OKT(preview))
	}
}

// @Summary      Join a household
// @Description  Redeems an invite token for the authenticated user
// @Tags         Invites
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "invite token"
// @Success      200  {object}  response.APIResponse[models.Profile]
// @Router       /api/v1/invites/{token}/join [post]
func apiJoinHousehold(hh *household.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		profile, err := hh.Join(c.Request.Context(), c.Param("token"), c.GetString("userID"), req.DisplayName)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(profile))
	}
}

// RegisterPublicInviteRoutes wires the unauthenticated invite preview.
func RegisterPublicInviteRoutes(r gin.IRouter, hh *household.Service) {
	r.GET("/invites/:token", apiGetInvite(hh))
}

// RegisterInviteRoutes wires authenticated invite endpoints.
func RegisterInviteRoutes(r gin.IRouter, hh *household.Service) {
	r.POST("/invites/:token/join", apiJoinHousehold(hh))

	admin := r.Group("/")
	admin.Use(mw.RequireProfile(hh), mw.RequireAdmin())
	admin.POST("/invites", apiCreateInvite(hh))
}
