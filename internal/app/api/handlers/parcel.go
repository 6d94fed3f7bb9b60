package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	parcelsvc "github.com/mossleaf/homeops/internal/app/service/parcel"
	parcelapi "github.com/mossleaf/homeops/internal/platform/parcel"
	"github.com/mossleaf/homeops/pkg/response"
)

type AddParcelRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
	CarrierCode    string `json:"carrier_code" binding:"required"`
	Description    string `json:"description" binding:"required"`
}

// @Summary      List active parcel deliveries
// @Description  Proxied through the server so the Parcel key stays secret
// @Tags         Parcel
// @Produce      json
// @Success      200  {object}  response.APIResponse[[]parcel.Delivery]
// @Router       /api/v1/parcel/deliveries [get]
func apiListParcelDeliveries(svc *parcelsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		deliveries, err := svc.ListActiveDeliveries(c.Request.Context())
		if err != nil {
			if errors.Is(err, parcelapi.ErrNotConfigured) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeUpstream, "parcel api key not configured"))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeUpstream, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(deliveries))
	}
}

// @Summary      Add a parcel delivery
// @Tags         Parcel
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.APIResponse[parcel.AddDeliveryResult]
// @Router       /api/v1/parcel/deliveries [post]
func apiAddParcelDelivery(svc *parcelsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddParcelRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		res, err := svc.AddDelivery(c.Request.Context(), parcelapi.AddDeliveryRequest{
			TrackingNumber:       req.TrackingNumber,
			CarrierCode:          req.CarrierCode,
			Description:          req.Description,
			SendPushConfirmation: true,
		})
		if err != nil {
			if errors.Is(err, parcelapi.ErrNotConfigured) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeUpstream, "parcel api key not configured"))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeUpstream, err.Error()))
			return
		}
		if !res.Success {
			c.JSON(http.StatusOK, response.ErrorT(response.APIResponseCodeBadRequest, res))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterParcelRoutes(r gin.IRouter, svc *parcelsvc.Service) {
	r.GET("/parcel/deliveries", apiListParcelDeliveries(svc))
	r.POST("/parcel/deliveries", apiAddParcelDelivery(svc))
}
