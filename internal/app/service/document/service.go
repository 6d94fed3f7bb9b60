package document

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/tool"
)

var ErrNotFound = errors.New("document not found")

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// List returns the household's documents, soonest expiry first, undated last.
// Expiring documents use the 60-day warn threshold on the card side.
func (s *Service) List(ctx context.Context, householdID string) ([]*models.Document, error) {
	var docs []*models.Document
	if err := s.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("expiry_date asc NULLS LAST").
		Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

func (s *Service) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	doc.ID = tool.GenerateUUIDV7()
	if err := s.db.WithContext(ctx).Create(doc).Error; err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

func (s *Service) Update(ctx context.Context, householdID, id string, patch map[string]any) error {
	res := s.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("household_id = ? AND id = ?", householdID, id).
		Updates(patch)
	if res.Error != nil {
		return fmt.Errorf("failed to update document: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, householdID, id string) error {
	res := s.db.WithContext(ctx).
		Where("household_id = ? AND id = ?", householdID, id).
		Delete(&models.Document{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete document: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
