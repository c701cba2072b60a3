package models

// Partner represents the partners table.
type Partner struct {
	ID    int64  `db:"partner_id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Share string `db:"share"`
	AuditFields
}
