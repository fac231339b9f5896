package services

import (
	"context"

	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/arprinters/pos_backend/internal/dto"
)

// SettingsSvcFacade manages the single shop profile record.
type SettingsSvcFacade interface {
	// GetShopProfile retrieves the shop profile.
	GetShopProfile(ctx context.Context) (*domain.ShopProfile, error)

	// SaveShopProfile replaces the shop profile.
	SaveShopProfile(ctx context.Context, req dto.SaveShopProfileRequest) (*domain.ShopProfile, error)
}
