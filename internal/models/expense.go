package models

// Expense represents the expenses table.
type Expense struct {
	ID            int64   `db:"expense_id"`
	Category      string  `db:"category"`
	Description   string  `db:"description"`
	Amount        string  `db:"amount"`
	Month         string  `db:"month"`
	Year          int     `db:"year"`
	Date          string  `db:"expense_date"`
	PaymentMethod *string `db:"payment_method"`
	Notes         *string `db:"notes"`
	AuditFields
}
