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
)

type BillRequest struct {
	Name      string   `json:"name" binding:"required"`
	Amount    *float64 `json:"amount"`
	DueDate   string   `json:"due_date" binding:"required"`
	Recurring bool     `json:"recurring"`
	Notes     *string  `json:"notes"`
}

type MarkPaidResponse struct {
	Bill *models.Bill `json:"bill"`
	// NextBill is set when a recurring bill rolled over.
	NextBill *models.Bill `json:"next_bill,omitempty"`
}

// BillView decorates a bill with the due/amount labels the cards render.
// Bills escalate late, at 3 days out, since most get paid close to due.
type BillView struct {
	*models.Bill
	DueLabel    string     `json:"due_label"`
	AmountLabel string     `json:"amount_label"`
	Urgency     dates.Tier `json:"urgency"`
}

func billView(b *models.Bill, today time.Time) BillView {
	due := b.DueAt()
	days, ok := dates.DaysUntil(today, &due)
	v := BillView{
		Bill:        b,
		DueLabel:    dates.RelativeDays(days, ok),
		AmountLabel: dates.FormatCurrency(b.Amount),
		Urgency:     dates.TierFor(days, ok, dates.WarnThresholdEscalate),
	}
	if b.Paid {
		v.Urgency = dates.TierNormal
	}
	return v
}

// @Summary      List bills
// @Tags         Track
// @Produce      json
// @Success      200  {object}  response.APIResponse[[]BillView]
// @Router       /api/v1/bills [get]
func apiListBills(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListBills(c.Request.Context(), mw.HouseholdIDFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		today := time.Now()
		views := lo.Map(items, func(b *models.Bill, _ int) BillView {
			return billView(b, today)
		})
		c.JSON(http.StatusOK, response.OKT(views))
	}
}

// @Summary      Create a bill
// @Tags         Track
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.APIResponse[models.Bill]
// @Router       /api/v1/bills [post]
func apiCreateBill(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BillRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		due, err := parseDate(&req.DueDate)
		if err != nil || due == nil {
			badRequest(c, "due_date is required as YYYY-MM-DD")
			return
		}
		p := mw.ProfileFrom(c)
		bill := &models.Bill{
			HouseholdID: p.HouseholdID,
			CreatedBy:   &p.ID,
			Name:        req.Name,
			Amount:      req.Amount,
			DueDate:     *due,
			Recurring:   req.Recurring,
			Notes:       req.Notes,
		}
		created, err := svc.CreateBill(c.Request.Context(), bill)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(created))
	}
}

// @Summary      Update a bill
// @Tags         Track
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "bill id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/bills/{id} [put]
func apiUpdateBill(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BillRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		due, err := parseDate(&req.DueDate)
		if err != nil || due == nil {
			badRequest(c, "due_date is required as YYYY-MM-DD")
			return
		}
		patch := map[string]any{
			"name":      req.Name,
			"amount":    req.Amount,
			"due_date":  due,
			"recurring": req.Recurring,
			"notes":     req.Notes,
		}
		if err := svc.UpdateBill(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id"), patch); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Delete a bill
// @Tags         Track
// @Produce      json
// @Param        id  path  string  true  "bill id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/bills/{id} [delete]
func apiDeleteBill(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteBill(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Mark a bill paid
// @Description  Recurring bills spawn next month's bill, due day clamped
// @Tags         Track
// @Produce      json
// @Param        id  path  string  true  "bill id"
// @Success      200  {object}  response.APIResponse[MarkPaidResponse]
// @Router       /api/v1/bills/{id}/pay [post]
func apiMarkBillPaid(svc *track.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		bill, next, err := svc.MarkBillPaid(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id"), time.Now())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(MarkPaidResponse{Bill: bill, NextBill: next}))
	}
}

func RegisterBillRoutes(r gin.IRouter, svc *track.Service) {
	r.GET("/bills", apiListBills(svc))
	r.POST("/bills", apiCreateBill(svc))
	r.PUT("/bills/:id", apiUpdateBill(svc))
	r.DELETE("/bills/:id", apiDeleteBill(svc))
	r.POST("/bills/:id/pay", apiMarkBillPaid(svc))
}
