package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/mossleaf/homeops/internal/app/api/middleware"
	"github.com/mossleaf/homeops/internal/app/service/inventory"
	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/response"
	"github.com/mossleaf/homeops/pkg/types"
)

type InventoryItemRequest struct {
	Name         string                  `json:"name" binding:"required"`
	Quantity     *string                 `json:"quantity"`
	Category     types.InventoryCategory `json:"category"`
	AlwaysNeeded bool                    `json:"always_needed"`
	Notes        *string                 `json:"notes"`
}

type ToggleCheckedRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

// @Summary      List inventory
// @Tags         Inventory
// @Produce      json
// @Success      200  {object}  response.APIResponse[[]models.InventoryItem]
// @Router       /api/v1/inventory [get]
func apiListInventory(svc *inventory.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context(), mw.HouseholdIDFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      Add an inventory item
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.APIResponse[models.InventoryItem]
// @Router       /api/v1/inventory [post]
func apiCreateInventory(svc *inventory.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req InventoryItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		p := mw.ProfileFrom(c)
		// The quick-add box only sends a name; everything else defaults.
		if req.Quantity == nil && req.Notes == nil && !req.AlwaysNeeded {
			created, err := svc.QuickAdd(c.Request.Context(), p.HouseholdID, p.ID, req.Name, req.Category)
			if err != nil {
				writeError(c, err)
				return
			}
			c.JSON(http.StatusOK, response.OKT(created))
			return
		}
		category := req.Category
		if category == "" {
			category = types.InventoryCategoryGrocery
		}
		item := &models.InventoryItem{
			HouseholdID:  p.HouseholdID,
			CreatedBy:    &p.ID,
			Name:         req.Name,
			Quantity:     req.Quantity,
			Category:     category,
			AlwaysNeeded: req.AlwaysNeeded,
			Notes:        req.Notes,
		}
		created, err := svc.Create(c.Request.Context(), item)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(created))
	}
}

// @Summary      Update an inventory item
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "inventory item id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/inventory/{id} [put]
func apiUpdateInventory(svc *inventory.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req InventoryItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		patch := map[string]any{
			"name":          req.Name,
			"quantity":      req.Quantity,
			"always_needed": req.AlwaysNeeded,
			"notes":         req.Notes,
		}
		if req.Category != "" {
			patch["category"] = req.Category
		}
		if err := svc.Update(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id"), patch); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Delete an inventory item
// @Tags         Inventory
// @Produce      json
// @Param        id  path  string  true  "inventory item id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/inventory/{id} [delete]
func apiDeleteInventory(svc *inventory.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Check or uncheck an item
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "inventory item id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/inventory/{id}/check [post]
func apiToggleInventoryChecked(svc *inventory.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ToggleCheckedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := svc.ToggleChecked(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id"), *req.Checked); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Clear checked items
// @Description  Unchecks always-needed items, deletes the rest
// @Tags         Inventory
// @Produce      json
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/inventory/clear-checked [post]
func apiClearChecked(svc *inventory.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.ClearChecked(c.Request.Context(), mw.HouseholdIDFrom(c)); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterInventoryRoutes(r gin.IRouter, svc *inventory.Service) {
	r.GET("/inventory", apiListInventory(svc))
	r.POST("/inventory", apiCreateInventory(svc))
	r.POST("/inventory/clear-checked", apiClearChecked(svc))
	r.PUT("/inventory/:id", apiUpdateInventory(svc))
	r.DELETE("/inventory/:id", apiDeleteInventory(svc))
	r.POST("/inventory/:id/check", apiToggleInventoryChecked(svc))
}
