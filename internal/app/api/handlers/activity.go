package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/mossleaf/homeops/internal/app/api/middleware"
	"github.com/mossleaf/homeops/internal/app/service/track"
	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/response"
)

type ActivityRequest struct {
	Name             string   `json:"name" binding:"required"`
	PersonID         *string  `json:"person_id"`
	EventDescription *string  `json:"event_description"`
	EventDate        *string  `json:"event_date"`
	AmountDue        *float64 `json:"amount_due"`
	Paid             bool     `json:"paid"`
	Notes            *string  `json:"notes"`
}

// @Summary      List activities
// @Tags         Orders
// @Produce      json
// @Success      200  {object}  response.APIResponse[[]models.Activity]
// @Router       /api/v1/activities [get]
func apiListActivities(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListActivities(c.Request.Context(), mw.HouseholdIDFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      Create an activity
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.APIResponse[models.Activity]
// @Router       /api/v1/activities [post]
func apiCreateActivity(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ActivityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		eventDate, err := parseDate(req.EventDate)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		p := mw.ProfileFrom(c)
		act := &models.Activity{
			HouseholdID:      p.HouseholdID,
			PersonID:         req.PersonID,
			Name:             req.Name,
			EventDescription: req.EventDescription,
			EventDate:        eventDate,
			AmountDue:        req.AmountDue,
			Paid:             req.Paid,
			Notes:            req.Notes,
		}
		created, err := svc.CreateActivity(c.Request.Context(), act)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(created))
	}
}

// @Summary      Update an activity
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "activity id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/activities/{id} [put]
func apiUpdateActivity(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ActivityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		eventDate, err := parseDate(req.EventDate)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		patch := map[string]any{
			"name":              req.Name,
			"person_id":         req.PersonID,
			"event_description": req.EventDescription,
			"event_date":        eventDate,
			"amount_due":        req.AmountDue,
			"paid":              req.Paid,
			"notes":             req.Notes,
		}
		if err := svc.UpdateActivity(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id"), patch); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Delete an activity
// @Tags         Orders
// @Produce      json
// @Param        id  path  string  true  "activity id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/activities/{id} [delete]
func apiDeleteActivity(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteActivity(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterActivityRoutes(r gin.IRouter, svc *track.Service) {
	r.GET("/activities", apiListActivities(svc))
	r.POST("/activities", apiCreateActivity(svc))
	r.PUT("/activities/:id", apiUpdateActivity(svc))
	r.DELETE("/activities/:id", apiDeleteActivity(svc))
}
