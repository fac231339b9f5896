package pgsql

import (
	"context"
	"errors"

	"github.com/arprinters/pos_backend/internal/apperrors"
	"github.com/arprinters/pos_backend/internal/core/domain"
	portsrepo "github.com/arprinters/pos_backend/internal/core/ports/repositories"
	"github.com/arprinters/pos_backend/internal/models"
	"github.com/arprinters/pos_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for the shop profile.
func newPgxSettingsRepository(pool PgxPool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSettingsRepository implements portsrepo.SettingsRepository
var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// GetShopProfile retrieves the single shop profile record. The migrations
// seed it, so a missing row is a deployment error.
func (r *PgxSettingsRepository) GetShopProfile(ctx context.Context) (*domain.ShopProfile, error) {
	query := `
		SELECT settings_id, name, address, phone, email, footer_note, logo
		FROM settings
		WHERE settings_id = $1;
	`
	var modelProfile models.ShopProfile
	err := r.Pool.QueryRow(ctx, query, mapping.SettingsProfileID).Scan(
		&modelProfile.SettingsID,
		&modelProfile.Name,
		&modelProfile.Address,
		&modelProfile.Phone,
		&modelProfile.Email,
		&modelProfile.FooterNote,
		&modelProfile.Logo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find shop profile", err)
	}

	domainProfile := mapping.ToDomainShopProfile(modelProfile)
	return &domainProfile, nil
}

// SaveShopProfile inserts or replaces the shop profile record.
func (r *PgxSettingsRepository) SaveShopProfile(ctx context.Context, profile domain.ShopProfile) error {
	modelProfile := mapping.ToModelShopProfile(profile)
	query := `
		INSERT INTO settings (settings_id, name, address, phone, email, footer_note, logo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (settings_id) DO UPDATE
		SET name = EXCLUDED.name, address = EXCLUDED.address,
		    phone = EXCLUDED.phone, email = EXCLUDED.email,
		    footer_note = EXCLUDED.footer_note, logo = EXCLUDED.logo;
	`
	_, err := r.Pool.Exec(ctx, query,
		modelProfile.SettingsID,
		modelProfile.Name,
		modelProfile.Address,
		modelProfile.Phone,
		modelProfile.Email,
		modelProfile.FooterNote,
		modelProfile.Logo,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save shop profile", err)
	}
	return nil
}
