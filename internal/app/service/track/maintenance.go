package track

import (
	"context"
	"fmt"
	"time"

	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/tool"
)

func (s *Service) ListMaintenanceItems(ctx context.Context, householdID string) ([]*models.MaintenanceItem, error) {
	var items []*models.MaintenanceItem
	if err := s.scoped(ctx, householdID).Order("created_at asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list maintenance items: %w", err)
	}
	return items, nil
}

func (s *Service) CreateMaintenanceItem(ctx context.Context, item *models.MaintenanceItem) (*models.MaintenanceItem, error) {
	item.ID = tool.GenerateUUIDV7()
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create maintenance item: %w", err)
	}
	return item, nil
}

func (s *Service) UpdateMaintenanceItem(ctx context.Context, householdID, id string, patch map[string]any) error {
	return s.updateScoped(ctx, &models.MaintenanceItem{}, householdID, id, patch)
}

func (s *Service) DeleteMaintenanceItem(ctx context.Context, householdID, id string) error {
	return s.deleteScoped(ctx, &models.MaintenanceItem{}, householdID, id)
}

// CompleteMaintenanceItem stamps the item as done today; the next due date is
// derived from this on read.
func (s *Service) CompleteMaintenanceItem(ctx context.Context, householdID, id string, today time.Time) error {
	return s.updateScoped(ctx, &models.MaintenanceItem{}, householdID, id, map[string]any{
		"last_completed": models.DateOf(today),
	})
}
