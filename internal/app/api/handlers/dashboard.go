package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	mw "github.com/mossleaf/homeops/internal/app/api/middleware"
	"github.com/mossleaf/homeops/internal/app/service/dashboard"
	"github.com/mossleaf/homeops/pkg/response"
)

// @Summary      Household dashboard
// @Description  Overdue / due-this-week / completed-recently buckets and counts
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  response.APIResponse[dashboard.Summary]
// @Router       /api/v1/dashboard [get]
func apiGetDashboard(svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The clock is sampled once here; the aggregation itself is pure.
		summary, err := svc.Summarize(c.Request.Context(), mw.HouseholdIDFrom(c), time.Now())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(summary))
	}
}

func RegisterDashboardRoutes(r gin.IRouter, svc *dashboard.Service) {
	r.GET("/dashboard", apiGetDashboard(svc))
}
