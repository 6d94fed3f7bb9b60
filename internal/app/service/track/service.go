package track

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist in the caller's
// household. Records of other households are indistinguishable from missing.
var ErrNotFound = errors.New("record not found")

// Service owns the five tracked collections: subscriptions, maintenance
// items, bills, orders, and activities.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

func (s *Service) scoped(ctx context.Context, householdID string) *gorm.DB {
	return s.db.WithContext(ctx).Where("household_id = ?", householdID)
}

// updateScoped applies a column patch to one household-scoped record.
func (s *Service) updateScoped(ctx context.Context, model any, householdID, id string, patch map[string]any) error {
	res := s.scoped(ctx, householdID).Model(model).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return fmt.Errorf("failed to update record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteScoped removes one household-scoped record.
func (s *Service) deleteScoped(ctx context.Context, model any, householdID, id string) error {
	res := s.scoped(ctx, householdID).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return fmt.Errorf("failed to delete record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func firstScoped[T any](s *Service, ctx context.Context, householdID, id string) (*T, error) {
	var out T
	if err := s.scoped(ctx, householdID).Where("id = ?", id).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load record: %w", err)
	}
	return &out, nil
}
