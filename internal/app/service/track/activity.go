package track

import (
	"context"
	"fmt"

	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/tool"
)

// ListActivities returns the household's activities with the assigned person
// preloaded, soonest event first, undated ones last.
func (s *Service) ListActivities(ctx context.Context, householdID string) ([]*models.Activity, error) {
	var items []*models.Activity
	if err := s.scoped(ctx, householdID).
		Preload("Person").
		Order("event_date asc NULLS LAST").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return items, nil
}

func (s *Service) CreateActivity(ctx context.Context, act *models.Activity) (*models.Activity, error) {
	act.ID = tool.GenerateUUIDV7()
	if err := s.db.WithContext(ctx).Create(act).Error; err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return act, nil
}

func (s *Service) UpdateActivity(ctx context.Context, householdID, id string, patch map[string]any) error {
	return s.updateScoped(ctx, &models.Activity{}, householdID, id, patch)
}

func (s *Service) DeleteActivity(ctx context.Context, householdID, id string) error {
	return s.deleteScoped(ctx, &models.Activity{}, householdID, id)
}
