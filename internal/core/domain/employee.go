package domain

// Employee represents a staff member. Salary is a decimal-precision string;
// ProjectID is a nullable reference to the project the employee is assigned to.
type Employee struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Department string `json:"department"`
	Status     string `json:"status"`
	ProjectID  *int64 `json:"projectId"`
	Salary     string `json:"salary"`
	AuditFields
}

// FullName returns the display name used in dashboard widgets.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
