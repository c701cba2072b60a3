package models

// Project represents the projects table.
type Project struct {
	ID        int64   `db:"project_id"`
	Name      string  `db:"name"`
	Client    string  `db:"client"`
	Status    string  `db:"status"`
	Progress  int     `db:"progress"`
	Value     string  `db:"value"`
	Deadline  *string `db:"deadline"`
	ManagerID *int64  `db:"manager_id"`
	AuditFields
}
