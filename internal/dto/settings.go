package dto

import (
	"github.com/arprinters/pos_backend/internal/core/domain"
)

// SaveShopProfileRequest defines the data for replacing the shop profile.
type SaveShopProfileRequest struct {
	Name       string `json:"name" binding:"required"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email" binding:"omitempty,email"`
	FooterNote string `json:"footerNote"`
	Logo       string `json:"logo"`
}

// ShopProfileResponse defines the data returned for the shop profile.
type ShopProfileResponse struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	FooterNote string `json:"footerNote"`
	Logo       string `json:"logo"`
}

// ToShopProfileResponse converts a domain.ShopProfile to its DTO.
func ToShopProfileResponse(p *domain.ShopProfile) ShopProfileResponse {
	return ShopProfileResponse{
		Name:       p.Name,
		Address:    p.Address,
		Phone:      p.Phone,
		Email:      p.Email,
		FooterNote: p.FooterNote,
		Logo:       p.Logo,
	}
}
