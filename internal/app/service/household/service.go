package household

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/tool"
	"github.com/mossleaf/homeops/pkg/types"
)

// AvatarColors is the palette a new member's avatar color is drawn from.
var AvatarColors = []string{
	"#cba6f7", // mauve
	"#89b4fa", // blue
	"#a6e3a1", // green
	"#f9e2af", // yellow
	"#fab387", // peach
	"#f38ba8", // red
	"#94e2d5", // teal
	"#f5c2e7", // pink
}

var (
	ErrProfileExists  = errors.New("user already belongs to a household")
	ErrProfileMissing = errors.New("no profile for user")
	ErrInviteInvalid  = errors.New("invite invalid or already used")
	ErrLastAdmin      = errors.New("cannot remove the household's only admin")
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// CreateHousehold registers a new household with the calling user as its
// admin. Household and profile are written in one transaction.
func (s *Service) CreateHousehold(ctx context.Context, userID, householdName, displayName string) (*models.Household, *models.Profile, error) {
	if existing, err := s.GetProfile(ctx, userID); err == nil && existing != nil {
		return nil, nil, ErrProfileExists
	} else if err != nil && !errors.Is(err, ErrProfileMissing) {
		return nil, nil, err
	}

	hh := &models.Household{
		ID:   tool.GenerateUUIDV7(),
		Name: householdName,
	}
	profile := &models.Profile{
		ID:          userID,
		HouseholdID: hh.ID,
		DisplayName: displayName,
		Role:        types.RoleAdmin,
		AvatarColor: randomAvatarColor(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(hh).Error; err != nil {
			return fmt.Errorf("failed to create household: %w", err)
		}
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.log.Infow("household created", "household_id", hh.ID, "admin", userID)
	return hh, profile, nil
}

// GetProfile loads the profile of an authenticated user.
func (s *Service) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileMissing
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &p, nil
}

// GetHousehold loads a household by id.
func (s *Service) GetHousehold(ctx context.Context, householdID string) (*models.Household, error) {
	var hh models.Household
	if err := s.db.WithContext(ctx).Where("id = ?", householdID).First(&hh).Error; err != nil {
		return nil, fmt.Errorf("failed to load household: %w", err)
	}
	return &hh, nil
}

// ListMembers returns all profiles of a household, oldest first.
func (s *Service) ListMembers(ctx context.Context, householdID string) ([]*models.Profile, error) {
	var members []*models.Profile
	if err := s.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at asc").
		Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// RemoveMember deletes a member profile. The household must keep at least one
// admin, so removing the only admin is rejected.
func (s *Service) RemoveMember(ctx context.Context, householdID, memberID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target models.Profile
		if err := tx.Where("id = ? AND household_id = ?", memberID, householdID).First(&target).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileMissing
			}
			return fmt.Errorf("failed to load member: %w", err)
		}
		if target.Role == types.RoleAdmin {
			var admins int64
			if err := tx.Model(&models.Profile{}).
				Where("household_id = ? AND role = ?", householdID, types.RoleAdmin).
				Count(&admins).Error; err != nil {
				return fmt.Errorf("failed to count admins: %w", err)
			}
			if admins <= 1 {
				return ErrLastAdmin
			}
		}
		if err := tx.Delete(&target).Error; err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}
		return nil
	})
}

func randomAvatarColor() string {
	return AvatarColors[rand.Intn(len(AvatarColors))]
}
