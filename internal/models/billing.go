package models

// Billing represents the billings table.
type Billing struct {
	ID          int64   `db:"billing_id"`
	ProjectID   int64   `db:"project_id"`
	Month       string  `db:"month"`
	Year        int     `db:"year"`
	Amount      string  `db:"amount"`
	Status      string  `db:"status"`
	InvoiceDate *string `db:"invoice_date"`
	PaymentDate *string `db:"payment_date"`
	AuditFields
}
