package domain

// Expense is an operating cost recorded against a month/year period.
// Category may be blank; the dashboard groups blanks under "Uncategorized".
type Expense struct {
	ID            int64   `json:"id"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Amount        string  `json:"amount"`
	Month         string  `json:"month"`
	Year          int     `json:"year"`
	Date          string  `json:"date"`
	PaymentMethod *string `json:"paymentMethod"`
	Notes         *string `json:"notes"`
	AuditFields
}
