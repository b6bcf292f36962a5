package dto

import (
	"time"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SavePartyRequest creates or updates a supplier or customer.
type SavePartyRequest struct {
	Name           string          `json:"name" binding:"required"`
	NameAr         string          `json:"nameAr"`
	TaxNumber      string          `json:"taxNumber"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email" binding:"omitempty,email"`
	Address        string          `json:"address"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Notes          string          `json:"notes"`
}

// PartyResponse defines the data returned for a supplier or customer.
type PartyResponse struct {
	PartyID        string           `json:"partyID"`
	Kind           domain.PartyKind `json:"kind"`
	Name           string           `json:"name"`
	NameAr         string           `json:"nameAr,omitempty"`
	TaxNumber      string           `json:"taxNumber,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	Email          string           `json:"email,omitempty"`
	Address        string           `json:"address,omitempty"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
	Notes          string           `json:"notes,omitempty"`
	IsActive       bool             `json:"isActive"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// ToPartyResponse converts a domain.Party to its response DTO.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:        p.PartyID,
		Kind:           p.Kind,
		Name:           p.Name,
		NameAr:         p.NameAr,
		TaxNumber:      p.TaxNumber,
		Phone:          p.Phone,
		Email:          p.Email,
		Address:        p.Address,
		OpeningBalance: p.OpeningBalance,
		Notes:          p.Notes,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
	}
}
