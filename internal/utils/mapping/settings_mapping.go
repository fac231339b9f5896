package mapping

import (
	"github.com/arprinters/pos_backend/internal/core/domain"
	"github.com/arprinters/pos_backend/internal/models"
)

// SettingsProfileID is the fixed key of the single shop profile record.
const SettingsProfileID = "profile"

// ToModelShopProfile converts a domain ShopProfile to the settings row.
func ToModelShopProfile(d domain.ShopProfile) models.ShopProfile {
	return models.ShopProfile{
		SettingsID: SettingsProfileID,
		Name:       d.Name,
		Address:    d.Address,
		Phone:      d.Phone,
		Email:      d.Email,
		FooterNote: d.FooterNote,
		Logo:       d.Logo,
	}
}

// ToDomainShopProfile converts the settings row to a domain ShopProfile.
func ToDomainShopProfile(m models.ShopProfile) domain.ShopProfile {
	return domain.ShopProfile{
		Name:       m.Name,
		Address:    m.Address,
		Phone:      m.Phone,
		Email:      m.Email,
		FooterNote: m.FooterNote,
		Logo:       m.Logo,
	}
}
