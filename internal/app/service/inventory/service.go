package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/logctx"
	"github.com/mossleaf/homeops/pkg/tool"
	"github.com/mossleaf/homeops/pkg/types"
)

var ErrNotFound = errors.New("inventory item not found")

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// List returns the household's inventory: unchecked before checked, then by
// category and age, matching how the shared list renders.
func (s *Service) List(ctx context.Context, householdID string) ([]*models.InventoryItem, error) {
	var items []*models.InventoryItem
	if err := s.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("checked asc").
		Order("category asc").
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

// QuickAdd inserts a bare item with defaults, the one-field add box flow.
func (s *Service) QuickAdd(ctx context.Context, householdID, createdBy, name string, category types.InventoryCategory) (*models.InventoryItem, error) {
	if category == "" {
		category = types.InventoryCategoryGrocery
	}
	item := &models.InventoryItem{
		ID:          tool.GenerateUUIDV7(),
		HouseholdID: householdID,
		CreatedBy:   &createdBy,
		Name:        name,
		Category:    category,
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to add inventory item: %w", err)
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	item.ID = tool.GenerateUUIDV7()
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, householdID, id string, patch map[string]any) error {
	res := s.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("household_id = ? AND id = ?", householdID, id).
		Updates(patch)
	if res.Error != nil {
		return fmt.Errorf("failed to update inventory item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, householdID, id string) error {
	res := s.db.WithContext(ctx).
		Where("household_id = ? AND id = ?", householdID, id).
		Delete(&models.InventoryItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete inventory item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ToggleChecked(ctx context.Context, householdID, id string, checked bool) error {
	return s.Update(ctx, householdID, id, map[string]any{"checked": checked})
}

// PartitionChecked splits the checked items into those to keep (always-needed,
// which only get unchecked) and those to drop off the list entirely.
func PartitionChecked(items []*models.InventoryItem) (keep, drop []*models.InventoryItem) {
	checked := lo.Filter(items, func(i *models.InventoryItem, _ int) bool { return i.Checked })
	keep, drop = lo.FilterReject(checked, func(i *models.InventoryItem, _ int) bool { return i.AlwaysNeeded })
	return keep, drop
}

// ClearChecked sweeps the list: checked always-needed items are unchecked,
// other checked items are deleted. Two batched writes.
func (s *Service) ClearChecked(ctx context.Context, householdID string) error {
	items, err := s.List(ctx, householdID)
	if err != nil {
		return err
	}
	keep, drop := PartitionChecked(items)

	if len(keep) > 0 {
		ids := lo.Map(keep, func(i *models.InventoryItem, _ int) string { return i.ID })
		if err := s.db.WithContext(ctx).
			Model(&models.InventoryItem{}).
			Where("household_id = ? AND id IN ?", householdID, ids).
			Update("checked", false).Error; err != nil {
			return fmt.Errorf("failed to uncheck always-needed items: %w", err)
		}
	}
	if len(drop) > 0 {
		ids := lo.Map(drop, func(i *models.InventoryItem, _ int) string { return i.ID })
		if err := s.db.WithContext(ctx).
			Where("household_id = ? AND id IN ?", householdID, ids).
			Delete(&models.InventoryItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear checked items: %w", err)
		}
	}

	logctx.FromCtx(ctx, s.log).Infow("inventory cleared", "unchecked", len(keep), "deleted", len(drop))
	return nil
}
