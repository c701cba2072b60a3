package dto

import (
	"time"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
)

// CreateBonusRequest defines the data needed to create a bonus manually.
// Amount and Percentage are independent on manual creation.
type CreateBonusRequest struct {
	ProjectID  int64  `json:"projectId" binding:"required,min=1"`
	EmployeeID int64  `json:"employeeId" binding:"required,min=1"`
	Month      string `json:"month" binding:"required,month"`
	Year       int    `json:"year" binding:"required,min=1000,max=9999"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage"`
	Status     string `json:"status" binding:"omitempty,oneof=Pending Approved Paid Rejected Finalized"`
}

// UpdateBonusRequest defines a partial update; nil fields are left untouched.
type UpdateBonusRequest struct {
	ProjectID  *int64  `json:"projectId" binding:"omitempty,min=1"`
	EmployeeID *int64  `json:"employeeId" binding:"omitempty,min=1"`
	Month      *string `json:"month" binding:"omitempty,month"`
	Year       *int    `json:"year" binding:"omitempty,min=1000,max=9999"`
	Amount     *string `json:"amount"`
	Percentage *string `json:"percentage"`
	Status     *string `json:"status" binding:"omitempty,oneof=Pending Approved Paid Rejected Finalized"`
}

// CalculateQuarterlyBonusesRequest is the quarterly calculator input.
// Percentages maps "{employeeId}-{projectId}" keys to percentage strings.
// Empty ProjectIDs/EmployeeIDs means no restriction.
type CalculateQuarterlyBonusesRequest struct {
	Quarter     int               `json:"quarter" binding:"required,min=1,max=4"`
	Year        int               `json:"year" binding:"required,min=1000,max=9999"`
	ProjectIDs  []int64           `json:"projectIds"`
	EmployeeIDs []int64           `json:"employeeIds"`
	Percentages map[string]string `json:"percentages"`
}

// BonusResponse defines the data returned for a bonus.
type BonusResponse struct {
	ID            int64     `json:"id"`
	ProjectID     int64     `json:"projectId"`
	EmployeeID    int64     `json:"employeeId"`
	Month         string    `json:"month"`
	Year          int       `json:"year"`
	Amount        string    `json:"amount"`
	Percentage    string    `json:"percentage"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// QuarterlyBonusesResponse is returned by the quarterly calculator endpoint.
type QuarterlyBonusesResponse struct {
	Message string          `json:"message"`
	Bonuses []BonusResponse `json:"bonuses"`
}

// ToBonusResponse converts a domain.Bonus to BonusResponse.
func ToBonusResponse(b *domain.Bonus) BonusResponse {
	return BonusResponse{
		ID:            b.ID,
		ProjectID:     b.ProjectID,
		EmployeeID:    b.EmployeeID,
		Month:         b.Month,
		Year:          b.Year,
		Amount:        b.Amount,
		Percentage:    b.Percentage,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToListBonusResponse converts a slice of domain.Bonus to response DTOs.
func ToListBonusResponse(bonuses []domain.Bonus) []BonusResponse {
	res := make([]BonusResponse, len(bonuses))
	for i := range bonuses {
		res[i] = ToBonusResponse(&bonuses[i])
	}
	return res
}
