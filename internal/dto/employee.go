package dto

import (
	"time"

	"github.com/nordpeak/backoffice_app/internal/core/domain"
)

// CreateEmployeeRequest defines the data needed to create a new employee.
// Salary is a decimal string; in lenient money mode non-numeric values are
// accepted at the boundary and degrade to zero during aggregation.
type CreateEmployeeRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Department string `json:"department"`
	Status     string `json:"status"`
	ProjectID  *int64 `json:"projectId"`
	Salary     string `json:"salary"`
}

// UpdateEmployeeRequest defines a partial update; nil fields are left untouched.
type UpdateEmployeeRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Department *string `json:"department"`
	Status     *string `json:"status"`
	ProjectID  *int64  `json:"projectId"`
	Salary     *string `json:"salary"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	ID            int64     `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Department    string    `json:"department"`
	Status        string    `json:"status"`
	ProjectID     *int64    `json:"projectId"`
	Salary        string    `json:"salary"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Department:    e.Department,
		Status:        e.Status,
		ProjectID:     e.ProjectID,
		Salary:        e.Salary,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListEmployeeResponse converts a slice of domain.Employee to response DTOs.
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}
