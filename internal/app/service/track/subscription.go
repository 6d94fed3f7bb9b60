package track

import (
	"context"
	"fmt"

	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/tool"
)

// ListSubscriptions returns the household's subscriptions, soonest renewal
// first, undated ones last.
func (s *Service) ListSubscriptions(ctx context.Context, householdID string) ([]*models.Subscription, error) {
	var items []*models.Subscription
	if err := s.scoped(ctx, householdID).Order("next_renewal_date asc NULLS LAST").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return items, nil
}

func (s *Service) CreateSubscription(ctx context.Context, sub *models.Subscription) (*models.Subscription, error) {
	sub.ID = tool.GenerateUUIDV7()
	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return sub, nil
}

func (s *Service) UpdateSubscription(ctx context.Context, householdID, id string, patch map[string]any) error {
	return s.updateScoped(ctx, &models.Subscription{}, householdID, id, patch)
}

func (s *Service) DeleteSubscription(ctx context.Context, householdID, id string) error {
	return s.deleteScoped(ctx, &models.Subscription{}, householdID, id)
}
