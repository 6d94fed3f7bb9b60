package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	mw "github.com/mossleaf/homeops/internal/app/api/middleware"
	"github.com/mossleaf/homeops/internal/app/service/track"
	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/dates"
	"github.com/mossleaf/homeops/pkg/response"
	"github.com/mossleaf/homeops/pkg/types"
)

type SubscriptionRequest struct {
	Name            string                     `json:"name" binding:"required"`
	Category        types.SubscriptionCategory `json:"category" binding:"required"`
	Cost            *float64                   `json:"cost"`
	BillingCycle    types.BillingCycle         `json:"billing_cycle" binding:"required"`
	NextRenewalDate *string                    `json:"next_renewal_date"`
	AutoRenews      *bool                      `json:"auto_renews"`
	Notes           *string                    `json:"notes"`
}

// SubscriptionView decorates a subscription with the labels the cards render.
// Renewal urgency uses the default 14-day warn threshold.
type SubscriptionView struct {
	*models.Subscription
	RenewalLabel string     `json:"renewal_label"`
	CostLabel    string     `json:"cost_label"`
	Urgency      dates.Tier `json:"urgency"`
}

func subscriptionView(s *models.Subscription, today time.Time) SubscriptionView {
	days, ok := dates.DaysUntil(today, models.AsTime(s.NextRenewalDate))
	return SubscriptionView{
		Subscription: s,
		RenewalLabel: dates.RelativeDays(days, ok),
		CostLabel:    dates.FormatCurrency(s.Cost),
		Urgency:      dates.TierFor(days, ok, dates.WarnThresholdDefault),
	}
}

// @Summary      List subscriptions
// @Tags         Track
// @Produce      json
// @Success      200  {object}  response.APIResponse[[]SubscriptionView]
// @Router       /api/v1/subscriptions [get]
func apiListSubscriptions(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListSubscriptions(c.Request.Context(), mw.HouseholdIDFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		today := time.Now()
		views := lo.Map(items, func(s *models.Subscription, _ int) SubscriptionView {
			return subscriptionView(s, today)
		})
		c.JSON(http.StatusOK, response.OKT(views))
	}
}

// @Summary      Create a subscription
// @Tags         Track
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.APIResponse[models.Subscription]
// @Router       /api/v1/subscriptions [post]
func apiCreateSubscription(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubscriptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		renewal, err := parseDate(req.NextRenewalDate)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		p := mw.ProfileFrom(c)
		sub := &models.Subscription{
			HouseholdID:     p.HouseholdID,
			CreatedBy:       &p.ID,
			Name:            req.Name,
			Category:        req.Category,
			Cost:            req.Cost,
			BillingCycle:    req.BillingCycle,
			NextRenewalDate: renewal,
			AutoRenews:      req.AutoRenews == nil || *req.AutoRenews,
			Notes:           req.Notes,
		}
		created, err := svc.CreateSubscription(c.Request.Context(), sub)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(created))
	}
}

// @Summary      Update a subscription
// @Tags         Track
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "subscription id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/subscriptions/{id} [put]
func apiUpdateSubscription(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubscriptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		renewal, err := parseDate(req.NextRenewalDate)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		patch := map[string]any{
			"name":              req.Name,
			"category":          req.Category,
			"cost":              req.Cost,
			"billing_cycle":     req.BillingCycle,
			"next_renewal_date": renewal,
			"notes":             req.Notes,
		}
		if req.AutoRenews != nil {
			patch["auto_renews"] = *req.AutoRenews
		}
		if err := svc.UpdateSubscription(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id"), patch); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Delete a subscription
// @Tags         Track
// @Produce      json
// @Param        id  path  string  true  "subscription id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/subscriptions/{id} [delete]
func apiDeleteSubscription(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteSubscription(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterSubscriptionRoutes(r gin.IRouter, svc *track.Service) {
	r.GET("/subscriptions", apiListSubscriptions(svc))
	r.POST("/subscriptions", apiCreateSubscription(svc))
	r.PUT("/subscriptions/:id", apiUpdateSubscription(svc))
	r.DELETE("/subscriptions/:id", apiDeleteSubscription(svc))
}
