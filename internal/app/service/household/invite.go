package household

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mossleaf/homeops/internal/models"
	"github.com/mossleaf/homeops/pkg/logctx"
	"github.com/mossleaf/homeops/pkg/tool"
	"github.com/mossleaf/homeops/pkg/types"
)

// CreateInvite mints a single-use join token for the household. email is
// optional and only pre-fills the join form.
func (s *Service) CreateInvite(ctx context.Context, householdID string, email *string) (*models.Invite, error) {
	inv := &models.Invite{
		ID:          tool.GenerateUUIDV7(),
		HouseholdID: householdID,
		Email:       email,
		Token:       tool.NewInviteToken(),
	}
	if err := s.db.WithContext(ctx).Create(inv).Error; err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("invite created", "invite_id", inv.ID, "household_id", householdID)
	return inv, nil
}

// GetInviteByToken returns the unused invite for token, or ErrInviteInvalid.
func (s *Service) GetInviteByToken(ctx context.Context, token string) (*models.Invite, error) {
	var inv models.Invite
	if err := s.db.WithContext(ctx).Where("token = ? AND used = false", token).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteInvalid
		}
		return nil, fmt.Errorf("failed to load invite: %w", err)
	}
	return &inv, nil
}

// Join redeems an invite: creates a member profile for the user and marks the
// invite used, in one transaction so a token can never be spent twice.
func (s *Service) Join(ctx context.Context, token, userID, displayName string) (*models.Profile, error) {
	if existing, err := s.GetProfile(ctx, userID); err == nil && existing != nil {
		return nil, ErrProfileExists
	} else if err != nil && !errors.Is(err, ErrProfileMissing) {
		return nil, err
	}

	var profile *models.Profile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv models.Invite
		if err := tx.Where("token = ? AND used = false", token).First(&inv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInviteInvalid
			}
			return fmt.Errorf("failed to load invite: %w", err)
		}

		profile = &models.Profile{
			ID:          userID,
			HouseholdID: inv.HouseholdID,
			DisplayName: displayName,
			Role:        types.RoleMember,
			AvatarColor: randomAvatarColor(),
		}
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		if err := tx.Model(&inv).Update("used", true).Error; err != nil {
			return fmt.Errorf("failed to mark invite used: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("member joined", "user_id", userID, "household_id", profile.HouseholdID)
	return profile, nil
}
