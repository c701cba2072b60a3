package domain

// Project statuses with dashboard significance. Other free-form statuses are
// stored as-is but never counted as active.
const (
	ProjectStatusActive     = "Active"
	ProjectStatusInProgress = "In Progress"
)

// Project represents a client engagement. Value is a decimal-precision string;
// ManagerID is a nullable reference to an Employee.
type Project struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Client    string  `json:"client"`
	Status    string  `json:"status"`
	Progress  int     `json:"progress"`
	Value     string  `json:"value"`
	Deadline  *string `json:"deadline"`
	ManagerID *int64  `json:"managerId"`
	AuditFields
}

// IsActive reports whether the project counts toward the active project metric.
func (p Project) IsActive() bool {
	return p.Status == ProjectStatusActive || p.Status == ProjectStatusInProgress
}
