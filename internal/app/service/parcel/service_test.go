package parcel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	parcelapi "github.com/mossleaf/homeops/internal/platform/parcel"
)

func newCachedService(t *testing.T, listCalls *atomic.Int64) *Service {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "add-delivery") {
			json.NewEncoder(w).Encode(parcelapi.AddDeliveryResult{Success: true})
			return
		}
		listCalls.Add(1)
		ok := true
		json.NewEncoder(w).Encode(map[string]any{
			"success":    ok,
			"deliveries": []parcelapi.Delivery{{TrackingNumber: "1Z999"}},
		})
	}))
	t.Cleanup(srv.Close)

	return &Service{
		client: parcelapi.NewClient(parcelapi.ClientOptions{
			APIKey:     "secret",
			BaseURL:    srv.URL,
			HTTPClient: srv.Client(),
		}),
		log: zap.NewNop().Sugar(),
	}
}

func TestListActiveDeliveries_ServesFromCache(t *testing.T) {
	var listCalls atomic.Int64
	svc := newCachedService(t, &listCalls)

	first, err := svc.ListActiveDeliveries(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.ListActiveDeliveries(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.EqualValues(t, 1, listCalls.Load())
}

func TestAddDelivery_InvalidatesCache(t *testing.T) {
	var listCalls atomic.Int64
	svc := newCachedService(t, &listCalls)

	_, err := svc.ListActiveDeliveries(context.Background())
	require.NoError(t, err)

	res, err := svc.AddDelivery(context.Background(), parcelapi.AddDeliveryRequest{TrackingNumber: "1Z888"})
	require.NoError(t, err)
	require.True(t, res.Success)

	_, err = svc.ListActiveDeliveries(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, listCalls.Load())
}
