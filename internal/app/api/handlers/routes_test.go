package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func routeSet(r *gin.Engine) map[string]bool {
	out := map[string]bool{}
	for _, rt := range r.Routes() {
		out[rt.Method+" "+rt.Path] = true
	}
	return out
}

func TestRegisterBillRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterBillRoutes(r.Group("/api/v1"), nil)

	routes := routeSet(r)
	require.True(t, routes["GET /api/v1/bills"])
	require.True(t, routes["POST /api/v1/bills"])
	require.True(t, routes["PUT /api/v1/bills/:id"])
	require.True(t, routes["DELETE /api/v1/bills/:id"])
	require.True(t, routes["POST /api/v1/bills/:id/pay"])
}

func TestRegisterInventoryRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterInventoryRoutes(r.Group("/api/v1"), nil)

	routes := routeSet(r)
	require.True(t, routes["POST /api/v1/inventory/clear-checked"])
	require.True(t, routes["POST /api/v1/inventory/:id/check"])
}

func TestRegisterInviteRoutes_SplitsPublicAndAuthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterPublicInviteRoutes(r.Group("/api/v1"), nil)
	RegisterInviteRoutes(r.Group("/api/v1"), nil)

	routes := routeSet(r)
	require.True(t, routes["GET /api/v1/invites/:token"])
	require.True(t, routes["POST /api/v1/invites/:token/join"])
	require.True(t, routes["POST /api/v1/invites"])
}

func TestRegisterMaintenanceRoutes_RegistersComplete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterMaintenanceRoutes(r.Group("/api/v1"), nil)

	routes := routeSet(r)
	require.True(t, routes["POST /api/v1/maintenance/:id/complete"])
}
