package models

// Employee represents the employees table. Salary maps a NUMERIC column
// selected as text so no float conversion happens on scan.
type Employee struct {
	ID         int64  `db:"employee_id"`
	FirstName  string `db:"first_name"`
	LastName   string `db:"last_name"`
	Department string `db:"department"`
	Status     string `db:"status"`
	ProjectID  *int64 `db:"project_id"`
	Salary     string `db:"salary"`
	AuditFields
}
