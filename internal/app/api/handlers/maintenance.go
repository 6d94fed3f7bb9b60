package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	mw "github.com/mossleaf/homeops/internal/app/api/middleware"
	"github.com/mossleaf/homeops/internal/app/service/track"
	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/response"
	"github.com/mossleaf/homeops/pkg/types"
)

// IntervalDays is validated here, at the boundary; the date math in pkg/dates
// assumes it is >= 1.
type MaintenanceRequest struct {
	Name          string                    `json:"name" binding:"required"`
	Category      types.MaintenanceCategory `json:"category" binding:"required"`
	IntervalDays  int                       `json:"interval_days" binding:"required,min=1"`
	LastCompleted *string                   `json:"last_completed"`
	Notes         *string                   `json:"notes"`
}

// @Summary      List maintenance items
// @Tags         Track
// @Produce      json
// @Success      200  {object}  response.APIResponse[[]models.MaintenanceItem]
// @Router       /api/v1/maintenance [get]
func apiListMaintenance(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListMaintenanceItems(c.Request.Context(), mw.HouseholdIDFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      Create a maintenance item
// @Tags         Track
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.APIResponse[models.MaintenanceItem]
// @Router       /api/v1/maintenance [post]
func apiCreateMaintenance(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MaintenanceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		last, err := parseDate(req.LastCompleted)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		p := mw.ProfileFrom(c)
		item := &models.MaintenanceItem{
			HouseholdID:   p.HouseholdID,
			CreatedBy:     &p.ID,
			Name:          req.Name,
			Category:      req.Category,
			IntervalDays:  req.IntervalDays,
			LastCompleted: last,
			Notes:         req.Notes,
		}
		created, err := svc.CreateMaintenanceItem(c.Request.Context(), item)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(created))
	}
}

// @Summary      Update a maintenance item
// @Tags         Track
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "maintenance item id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/maintenance/{id} [put]
func apiUpdateMaintenance(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MaintenanceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		last, err := parseDate(req.LastCompleted)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		patch := map[string]any{
			"name":           req.Name,
			"category":       req.Category,
			"interval_days":  req.IntervalDays,
			"last_completed": last,
			"notes":          req.Notes,
		}
		if err := svc.UpdateMaintenanceItem(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id"), patch); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Delete a maintenance item
// @Tags         Track
// @Produce      json
// @Param        id  path  string  true  "maintenance item id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/maintenance/{id} [delete]
func apiDeleteMaintenance(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteMaintenanceItem(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Mark a maintenance item done
// @Description  Sets last_completed to today; next due is derived on read
// @Tags         Track
// @Produce      json
// @Param        id  path  string  true  "maintenance item id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/maintenance/{id}/complete [post]
func apiCompleteMaintenance(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.CompleteMaintenanceItem(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id"), time.Now()); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterMaintenanceRoutes(r gin.IRouter, svc *track.Service) {
	r.GET("/maintenance", apiListMaintenance(svc))
	r.POST("/maintenance", apiCreateMaintenance(svc))
	r.PUT("/maintenance/:id", apiUpdateMaintenance(svc))
	r.DELETE("/maintenance/:id", apiDeleteMaintenance(svc))
	r.POST("/maintenance/:id/complete", apiCompleteMaintenance(svc))
}
