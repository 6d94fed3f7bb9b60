package parcel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when no Parcel API key is set. Handlers map it
// to an upstream-unavailable response.
var ErrNotConfigured = errors.New("parcel: api key not configured")

const DefaultBaseURL = "https://api.parcel.app/external"

type ClientOptions struct {
	APIKey  string
	BaseURL string
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// Client talks to the Parcel delivery-tracking API. The key never leaves the
// server; browser clients go through our proxy endpoints.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(opts ClientOptions) *Client {
	c := &Client{
		apiKey:  opts.APIKey,
		baseURL: opts.BaseURL,
		http:    opts.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 15 * time.Second}
	}
	return c
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type DeliveryEvent struct {
	Event      string  `json:"event"`
	Date       string  `json:"date"`
	Location   *string `json:"location"`
	Additional *string `json:"additional"`
}

type Delivery struct {
	CarrierCode       string          `json:"carrier_code"`
	Description       string          `json:"description"`
	StatusCode        int             `json:"status_code"`
	TrackingNumber    string          `json:"tracking_number"`
	DateExpected      *string         `json:"date_expected"`
	TimestampExpected *int64          `json:"timestamp_expected"`
	Events            []DeliveryEvent `json:"events"`
}

type deliveriesResponse struct {
	Success      *bool      `json:"success"`
	ErrorMessage string     `json:"error_message"`
	Deliveries   []Delivery `json:"deliveries"`
}

// ListActiveDeliveries fetches the active shipments tracked on the account.
func (c *Client) ListActiveDeliveries(ctx context.Context) ([]Delivery, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/deliveries/?filter_mode=active", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("api-key", c.apiKey)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parcel: list deliveries: %w", err)
	}
	defer res.Body.Close()

	var body deliveriesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parcel: decode deliveries: %w", err)
	}
	if body.Success != nil && !*body.Success {
		return nil, fmt.Errorf("parcel: %s", orUnknown(body.ErrorMessage))
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parcel: unexpected status %d", res.StatusCode)
	}
	return body.Deliveries, nil
}

type AddDeliveryRequest struct {
	TrackingNumber       string `json:"tracking_number"`
	CarrierCode          string `json:"carrier_code"`
	Description          string `json:"description"`
	SendPushConfirmation bool   `json:"send_push_confirmation"`
}

type AddDeliveryResult struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// AddDelivery registers a new tracked shipment.
func (c *Client) AddDelivery(ctx context.Context, in AddDeliveryRequest) (*AddDeliveryResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/add-delivery/", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parcel: add delivery: %w", err)
	}
	defer res.Body.Close()

	var out AddDeliveryResult
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("parcel: decode add delivery: %w", err)
	}
	if !out.Success && out.ErrorMessage == "" {
		out.ErrorMessage = fmt.Sprintf("unexpected status %d", res.StatusCode)
	}
	return &out, nil
}

func orUnknown(msg string) string {
	if msg == "" {
		return "unknown error"
	}
	return msg
}
