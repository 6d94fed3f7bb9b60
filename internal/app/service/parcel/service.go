package parcel

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	parcelapi "github.com/mossleaf/homeops/internal/platform/parcel"
	"github.com/mossleaf/homeops/pkg/config"
	"github.com/mossleaf/homeops/pkg/logctx"
)

// cacheTTL matches the 3-minute revalidation window the web proxy used, so a
// burst of dashboard loads doesn't hammer the upstream API.
const cacheTTL = 3 * time.Minute

type Service struct {
	client *parcelapi.Client
	log    *zap.SugaredLogger

	mu        sync.Mutex
	cached    []parcelapi.Delivery
	fetchedAt time.Time
}

func NewService(cfg *config.Config, log *zap.SugaredLogger) *Service {
	return &Service{
		client: parcelapi.NewClient(parcelapi.ClientOptions{
			APIKey:  cfg.Parcel.APIKey,
			BaseURL: cfg.Parcel.BaseURL,
		}),
		log: log,
	}
}

func (s *Service) Configured() bool {
	return s.client.Configured()
}

// ListActiveDeliveries returns the account's active shipments, served from a
// short-lived cache.
func (s *Service) ListActiveDeliveries(ctx context.Context) ([]parcelapi.Delivery, error) {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.fetchedAt) < cacheTTL {
		out := s.cached
		s.mu.Unlock()
		return out, nil
	}
	s.mu.Unlock()

	deliveries, err := s.client.ListActiveDeliveries(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = deliveries
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	return deliveries, nil
}

// AddDelivery registers a shipment and invalidates the cache so the new entry
// shows up on the next list.
func (s *Service) AddDelivery(ctx context.Context, in parcelapi.AddDeliveryRequest) (*parcelapi.AddDeliveryResult, error) {
	res, err := s.client.AddDelivery(ctx, in)
	if err != nil {
		return nil, err
	}
	if res.Success {
		s.mu.Lock()
		s.cached = nil
		s.mu.Unlock()
		logctx.FromCtx(ctx, s.log).Infow("parcel delivery added", "carrier", in.CarrierCode)
	}
	return res, nil
}
