package domain

// BonusStatus indicates the lifecycle state of a bonus award.
type BonusStatus string

const (
	BonusPending   BonusStatus = "Pending"
	BonusApproved  BonusStatus = "Approved"
	BonusPaid      BonusStatus = "Paid"
	BonusRejected  BonusStatus = "Rejected"
	BonusFinalized BonusStatus = "Finalized"
)

// Bonus is a monetary award tied to one employee and one project for a period.
// Amount and Percentage are stored independently: the quarterly calculator
// derives Amount from Percentage, but a manually created Bonus need not
// satisfy that relationship.
type Bonus struct {
	ID         int64       `json:"id"`
	ProjectID  int64       `json:"projectId"`
	EmployeeID int64       `json:"employeeId"`
	Month      string      `json:"month"`
	Year       int         `json:"year"`
	Amount     string      `json:"amount"`
	Percentage string      `json:"percentage"`
	Status     BonusStatus `json:"status"`
	AuditFields
}
