package track

import (
	"context"
	"fmt"

	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/tool"
)

func (s *Service) ListOrders(ctx context.Context, householdID string) ([]*models.Order, error) {
	var items []*models.Order
	if err := s.scoped(ctx, householdID).Order("next_delivery_date asc NULLS LAST").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return items, nil
}

func (s *Service) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.ID = tool.GenerateUUIDV7()
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

func (s *Service) UpdateOrder(ctx context.Context, householdID, id string, patch map[string]any) error {
	return s.updateScoped(ctx, &models.Order{}, householdID, id, patch)
}

func (s *Service) DeleteOrder(ctx context.Context, householdID, id string) error {
	return s.deleteScoped(ctx, &models.Order{}, householdID, id)
}
