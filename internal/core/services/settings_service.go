package services

import (
	"context"
	"fmt"

	"github.com/arprinters/pos_backend/internal/core/domain"
	portsrepo "github.com/arprinters/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/arprinters/pos_backend/internal/core/ports/services"
	"github.com/arprinters/pos_backend/internal/dto"
)

// settingsService manages the single shop profile record.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

// Ensure settingsService implements the portssvc.SettingsSvcFacade interface
var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetShopProfile retrieves the shop profile printed on receipts.
func (s *settingsService) GetShopProfile(ctx context.Context) (*domain.ShopProfile, error) {
	profile, err := s.settingsRepo.GetShopProfile(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to get shop profile")
		return nil, fmt.Errorf("failed to get shop profile: %w", err)
	}
	return profile, nil
}

// SaveShopProfile replaces the shop profile.
func (s *settingsService) SaveShopProfile(ctx context.Context, req dto.SaveShopProfileRequest) (*domain.ShopProfile, error) {
	profile := domain.ShopProfile{
		Name:       req.Name,
		Address:    req.Address,
		Phone:      req.Phone,
		Email:      req.Email,
		FooterNote: req.FooterNote,
		Logo:       req.Logo,
	}

	if err := s.settingsRepo.SaveShopProfile(ctx, profile); err != nil {
		s.LogError(ctx, err, "Failed to save shop profile")
		return nil, fmt.Errorf("failed to save shop profile: %w", err)
	}

	s.LogInfo(ctx, "Shop profile updated")
	return &profile, nil
}
