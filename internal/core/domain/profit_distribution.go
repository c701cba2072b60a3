package domain

// ProfitDistribution is a recorded payout of profit to a partner for one
// month/year, distinct from the live share calculation done by the dashboard.
// When a recorded row matches the dashboard period it takes precedence over
// the live calculation.
type ProfitDistribution struct {
	ID         int64  `json:"id"`
	PartnerID  int64  `json:"partnerId"`
	Month      string `json:"month"`
	Year       int    `json:"year"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage"`
	AuditFields
}
