package models

// ProfitDistribution represents the profit_distributions table.
type ProfitDistribution struct {
	ID         int64  `db:"distribution_id"`
	PartnerID  int64  `db:"partner_id"`
	Month      string `db:"month"`
	Year       int    `db:"year"`
	Amount     string `db:"amount"`
	Percentage string `db:"percentage"`
	AuditFields
}
