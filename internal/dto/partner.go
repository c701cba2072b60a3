package dto

import (
	"time"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
)

// CreatePartnerRequest defines the data needed to create a partner.
// Share is a percentage string; the sum across partners is not enforced.
type CreatePartnerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Share string `json:"share"`
}

// UpdatePartnerRequest defines a partial update; nil fields are left untouched.
type UpdatePartnerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Share *string `json:"share"`
}

// PartnerResponse defines the data returned for a partner.
type PartnerResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Share         string    `json:"share"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToPartnerResponse converts a domain.Partner to PartnerResponse.
func ToPartnerResponse(p *domain.Partner) PartnerResponse {
	return PartnerResponse{
		ID:            p.ID,
		Name:          p.Name,
		Email:         p.Email,
		Share:         p.Share,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListPartnerResponse converts a slice of domain.Partner to response DTOs.
func ToListPartnerResponse(partners []domain.Partner) []PartnerResponse {
	res := make([]PartnerResponse, len(partners))
	for i := range partners {
		res[i] = ToPartnerResponse(&partners[i])
	}
	return res
}
