package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/mossleaf/homeops/internal/app/api/middleware"
	"github.com/mossleaf/homeops/internal/app/service/track"
	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/response"
	"github.com/mossleaf/homeops/pkg/types"
)

type OrderRequest struct {
	Name             string                `json:"name" binding:"required"`
	Type             types.OrderType       `json:"type" binding:"required"`
	NextDeliveryDate *string               `json:"next_delivery_date"`
	Frequency        *types.OrderFrequency `json:"frequency"`
	Status           types.OrderStatus     `json:"status" binding:"required"`
	Notes            *string               `json:"notes"`
}

// @Summary      List orders
// @Tags         Orders
// @Produce      json
// @Success      200  {object}  response.APIResponse[[]models.Order]
// @Router       /api/v1/orders [get]
func apiListOrders(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListOrders(c.Request.Context(), mw.HouseholdIDFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      Create an order
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.APIResponse[models.Order]
// @Router       /api/v1/orders [post]
func apiCreateOrder(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		nextDelivery, err := parseDate(req.NextDeliveryDate)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		p := mw.ProfileFrom(c)
		order := &models.Order{
			HouseholdID:      p.HouseholdID,
			CreatedBy:        &p.ID,
			Name:             req.Name,
			Type:             req.Type,
			NextDeliveryDate: nextDelivery,
			Frequency:        req.Frequency,
			Status:           req.Status,
			Notes:            req.Notes,
		}
		created, err := svc.CreateOrder(c.Request.Context(), order)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(created))
	}
}

// @Summary      Update an order
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "order id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/orders/{id} [put]
func apiUpdateOrder(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		nextDelivery, err := parseDate(req.NextDeliveryDate)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		patch := map[string]any{
			"name":               req.Name,
			"type":               req.Type,
			"next_delivery_date": nextDelivery,
			"frequency":          req.Frequency,
			"status":             req.Status,
			"notes":              req.Notes,
		}
		if err := svc.UpdateOrder(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id"), patch); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Delete an order
// @Tags         Orders
// @Produce      json
// @Param        id  path  string  true  "order id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/orders/{id} [delete]
func apiDeleteOrder(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteOrder(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterOrderRoutes(r gin.IRouter, svc *track.Service) {
	r.GET("/orders", apiListOrders(svc))
	r.POST("/orders", apiCreateOrder(svc))
	r.PUT("/orders/:id", apiUpdateOrder(svc))
	r.DELETE("/orders/:id", apiDeleteOrder(svc))
}
