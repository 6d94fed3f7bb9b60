package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	mw "github.com/mossleaf/homeops/internal/app/api/middleware"
	"github.com/mossleaf/homeops/internal/app/service/household"
	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/response"
	"github.com/mossleaf/homeops/pkg/tool"
)

type CreateHouseholdRequest struct {
	Name        string `json:"name" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
}

type CreateHouseholdResponse struct {
	Household *models.Household `json:"household"`
	Profile   *models.Profile   `json:"profile"`
}

// @Summary      Register a household
// @Description  Creates a household with the caller as admin
// @Tags         Household
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.APIResponse[CreateHouseholdResponse]
// @Router       /api/v1/households [post]
func apiCreateHousehold(hh *household.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateHouseholdRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		h, p, err := hh.CreateHousehold(c.Request.Context(), c.GetString("userID"), req.Name, req.DisplayName)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(CreateHouseholdResponse{Household: h, Profile: p}))
	}
}

// @Summary      Current profile
// @Tags         Household
// @Produce      json
// @Success      200  {object}  response.APIResponse[models.Profile]
// @Router       /api/v1/me [get]
func apiGetMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OKT(mw.ProfileFrom(c)))
	}
}

// MemberView adds the avatar initials the member list renders.
type MemberView struct {
	*models.Profile
	Initials string `json:"initials"`
}

// @Summary      List household members
// @Tags         Household
// @Produce      json
// @Success      200  {object}  response.APIResponse[[]MemberView]
// @Router       /api/v1/members [get]
func apiListMembers(hh *household.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		members, err := hh.ListMembers(c.Request.Context(), mw.HouseholdIDFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		views := lo.Map(members, func(p *models.Profile, _ int) MemberView {
			return MemberView{Profile: p, Initials: tool.Initials(p.DisplayName)}
		})
		c.JSON(http.StatusOK, response.OKT(views))
	}
}

// @Summary      Remove a member
// @Tags         Household
// @Produce      json
// @Param        id  path  string  true  "member profile id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/members/{id} [delete]
func apiRemoveMember(hh *household.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := hh.RemoveMember(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// RegisterHouseholdRoutes wires registration and membership endpoints.
// r must already be authenticated; profile-scoped routes add RequireProfile.
func RegisterHouseholdRoutes(r gin.IRouter, hh *household.Service) {
	r.POST("/households", apiCreateHousehold(hh))

	scoped := r.Group("/")
	scoped.Use(mw.RequireProfile(hh))
	scoped.GET("/me", apiGetMe())
	scoped.GET("/members", apiListMembers(hh))
	scoped.DELETE("/members/:id", mw.RequireAdmin(), apiRemoveMember(hh))
}
