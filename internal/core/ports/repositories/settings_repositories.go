package repositories

import (
	"context"

	"github.com/arprinters/pos_backend/internal/core/domain"
)

// SettingsRepository persists the single shop profile record.
type SettingsRepository interface {
	// GetShopProfile retrieves the shop profile, or the seeded default.
	GetShopProfile(ctx context.Context) (*domain.ShopProfile, error)

	// SaveShopProfile inserts or replaces the shop profile record.
	SaveShopProfile(ctx context.Context, profile domain.ShopProfile) error
}
