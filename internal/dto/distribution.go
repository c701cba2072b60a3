package dto

import (
	"time"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
)

// CreateDistributionRequest defines the data needed to record a profit distribution.
type CreateDistributionRequest struct {
	PartnerID  int64  `json:"partnerId" binding:"required,min=1"`
	Month      string `json:"month" binding:"required,month"`
	Year       int    `json:"year" binding:"required,min=1000,max=9999"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage"`
}

// UpdateDistributionRequest defines a partial update; nil fields are left untouched.
type UpdateDistributionRequest struct {
	PartnerID  *int64  `json:"partnerId" binding:"omitempty,min=1"`
	Month      *string `json:"month" binding:"omitempty,month"`
	Year       *int    `json:"year" binding:"omitempty,min=1000,max=9999"`
	Amount     *string `json:"amount"`
	Percentage *string `json:"percentage"`
}

// DistributionResponse defines the data returned for a profit distribution.
type DistributionResponse struct {
	ID            int64     `json:"id"`
	PartnerID     int64     `json:"partnerId"`
	Month         string    `json:"month"`
	Year          int       `json:"year"`
	Amount        string    `json:"amount"`
	Percentage    string    `json:"percentage"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToDistributionResponse converts a domain.ProfitDistribution to DistributionResponse.
func ToDistributionResponse(d *domain.ProfitDistribution) DistributionResponse {
	return DistributionResponse{
		ID:            d.ID,
		PartnerID:     d.PartnerID,
		Month:         d.Month,
		Year:          d.Year,
		Amount:        d.Amount,
		Percentage:    d.Percentage,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToListDistributionResponse converts a slice of distributions to response DTOs.
func ToListDistributionResponse(dists []domain.ProfitDistribution) []DistributionResponse {
	res := make([]DistributionResponse, len(dists))
	for i := range dists {
		res[i] = ToDistributionResponse(&dists[i])
	}
	return res
}
