package models

// Bonus represents the bonuses table.
type Bonus struct {
	ID         int64  `db:"bonus_id"`
	ProjectID  int64  `db:"project_id"`
	EmployeeID int64  `db:"employee_id"`
	Month      string `db:"month"`
	Year       int    `db:"year"`
	Amount     string `db:"amount"`
	Percentage string `db:"percentage"`
	Status     string `db:"status"`
	AuditFields
}
