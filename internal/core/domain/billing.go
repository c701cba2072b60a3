package domain

// Billing is a recorded client invoice amount for one project in one month/year.
// One row per project per billing period.
type Billing struct {
	ID          int64   `json:"id"`
	ProjectID   int64   `json:"projectId"`
	Month       string  `json:"month"`
	Year        int     `json:"year"`
	Amount      string  `json:"amount"`
	Status      string  `json:"status"`
	InvoiceDate *string `json:"invoiceDate"`
	PaymentDate *string `json:"paymentDate"`
	AuditFields
}
