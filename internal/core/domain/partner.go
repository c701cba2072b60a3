package domain

// Partner holds a fixed percentage claim on overall profit. The shares of all
// partners are expected to sum to roughly 100 but this is not enforced.
type Partner struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Share string `json:"share"`
	AuditFields
}
