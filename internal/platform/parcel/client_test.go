package parcel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListActiveDeliveries_SendsAPIKeyAndFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "secret", r.Header.Get("api-key"))
		require.Equal(t, "active", r.URL.Query().Get("filter_mode"))

		ok := true
		json.NewEncoder(w).Encode(deliveriesResponse{
			Success: &ok,
			Deliveries: []Delivery{
				{TrackingNumber: "1Z999", Description: "Shoes", StatusCode: 0},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(ClientOptions{APIKey: "secret", BaseURL: srv.URL, HTTPClient: srv.Client()})

	deliveries, err := c.ListActiveDeliveries(context.Background())
	require.NoError(t, err)
	require.Len(t, deliveries, 1)
	require.Equal(t, "1Z999", deliveries[0].TrackingNumber)
}

func TestListActiveDeliveries_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		no := false
		json.NewEncoder(w).Encode(deliveriesResponse{Success: &no, ErrorMessage: "invalid api key"})
	}))
	defer srv.Close()

	c := NewClient(ClientOptions{APIKey: "bad", BaseURL: srv.URL, HTTPClient: srv.Client()})

	_, err := c.ListActiveDeliveries(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid api key")
}

func TestListActiveDeliveries_NotConfigured(t *testing.T) {
	c := NewClient(ClientOptions{})

	_, err := c.ListActiveDeliveries(context.Background())
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestAddDelivery_PostsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "secret", r.Header.Get("api-key"))

		var in AddDeliveryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "1Z999", in.TrackingNumber)
		require.Equal(t, "ups", in.CarrierCode)

		json.NewEncoder(w).Encode(AddDeliveryResult{Success: true})
	}))
	defer srv.Close()

	c := NewClient(ClientOptions{APIKey: "secret", BaseURL: srv.URL, HTTPClient: srv.Client()})

	out, err := c.AddDelivery(context.Background(), AddDeliveryRequest{
		TrackingNumber: "1Z999",
		CarrierCode:    "ups",
		Description:    "Shoes",
	})
	require.NoError(t, err)
	require.True(t, out.Success)
}

func TestAddDelivery_FailureFillsErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	c := NewClient(ClientOptions{APIKey: "secret", BaseURL: srv.URL, HTTPClient: srv.Client()})

	out, err := c.AddDelivery(context.Background(), AddDeliveryRequest{TrackingNumber: "x"})
	require.NoError(t, err)
	require.False(t, out.Success)
	require.Contains(t, out.ErrorMessage, "502")
}
