package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mossleaf/homeops/internal/models"
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// Summarize loads the household's five collections and aggregates them.
// Ordering mirrors the list endpoints so bucket order is stable across runs.
func (s *Service) Summarize(ctx context.Context, householdID string, today time.Time) (*Summary, error) {
	in, err := s.load(ctx, householdID)
	if err != nil {
		return nil, err
	}
	return Aggregate(*in, today), nil
}

func (s *Service) load(ctx context.Context, householdID string) (*Input, error) {
	var in Input
	scoped := func() *gorm.DB {
		return s.db.WithContext(ctx).Where("household_id = ?", householdID)
	}

	if err := scoped().Order("next_renewal_date asc NULLS LAST").Find(&in.Subscriptions).Error; err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}
	if err := scoped().Order("created_at asc").Find(&in.Maintenance).Error; err != nil {
		return nil, fmt.Errorf("failed to load maintenance items: %w", err)
	}
	if err := scoped().Order("due_date asc").Find(&in.Bills).Error; err != nil {
		return nil, fmt.Errorf("failed to load bills: %w", err)
	}
	if err := scoped().Order("next_delivery_date asc NULLS LAST").Find(&in.Orders).Error; err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	if err := scoped().Order("event_date asc NULLS LAST").Find(&in.Activities).Error; err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}
	return &in, nil
}
