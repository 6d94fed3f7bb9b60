package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	mw "github.com/mossleaf/homeops/internal/app/api/middleware"
	"github.com/mossleaf/homeops/internal/app/service/document"
	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/dates"
	"github.com/mossleaf/homeops/pkg/response"
	"github.com/mossleaf/homeops/pkg/types"
)

type DocumentRequest struct {
	Name           string             `json:"name" binding:"required"`
	Type           types.DocumentType `json:"type" binding:"required"`
	AssociatedItem *string            `json:"associated_item"`
	ExpiryDate     *string            `json:"expiry_date"`
	Link           *string            `json:"link"`
	Notes          *string            `json:"notes"`
}

// DocumentView decorates a document with its expiry rendering. Documents warn
// a long way out, 60 days, so renewals can be arranged in time.
type DocumentView struct {
	*models.Document
	ExpiryLabel string     `json:"expiry_label"`
	Urgency     dates.Tier `json:"urgency"`
}

func documentView(d *models.Document, today time.Time) DocumentView {
	expiry := models.AsTime(d.ExpiryDate)
	days, ok := dates.DaysUntil(today, expiry)
	return DocumentView{
		Document:    d,
		ExpiryLabel: dates.FormatDate(expiry),
		Urgency:     dates.TierFor(days, ok, dates.WarnThresholdDocument),
	}
}

// @Summary      List documents
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  response.APIResponse[[]DocumentView]
// @Router       /api/v1/documents [get]
func apiListDocuments(svc *document.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := svc.List(c.Request.Context(), mw.HouseholdIDFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		today := time.Now()
		views := lo.Map(docs, func(d *models.Document, _ int) DocumentView {
			return documentView(d, today)
		})
		c.JSON(http.StatusOK, response.OKT(views))
	}
}

// @Summary      Create a document
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.APIResponse[models.Document]
// @Router       /api/v1/documents [post]
func apiCreateDocument(svc *document.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DocumentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		expiry, err := parseDate(req.ExpiryDate)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		p := mw.ProfileFrom(c)
		doc := &models.Document{
			HouseholdID:    p.HouseholdID,
			CreatedBy:      &p.ID,
			Name:           req.Name,
			Type:           req.Type,
			AssociatedItem: req.AssociatedItem,
			ExpiryDate:     expiry,
			Link:           req.Link,
			Notes:          req.Notes,
		}
		created, err := svc.Create(c.Request.Context(), doc)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(created))
	}
}

// @Summary      Update a document
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "document id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/documents/{id} [put]
func apiUpdateDocument(svc *document.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DocumentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		expiry, err := parseDate(req.ExpiryDate)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		patch := map[string]any{
			"name":            req.Name,
			"type":            req.Type,
			"associated_item": req.AssociatedItem,
			"expiry_date":     expiry,
			"link":            req.Link,
			"notes":           req.Notes,
		}
		if err := svc.Update(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id"), patch); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Delete a document
// @Tags         Documents
// @Produce      json
// @Param        id  path  string  true  "document id"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/documents/{id} [delete]
func apiDeleteDocument(svc *document.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), mw.HouseholdIDFrom(c), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterDocumentRoutes(r gin.IRouter, svc *document.Service) {
	r.GET("/documents", apiListDocuments(svc))
	r.POST("/documents", apiCreateDocument(svc))
	r.PUT("/documents/:id", apiUpdateDocument(svc))
	r.DELETE("/documents/:id", apiDeleteDocument(svc))
}
