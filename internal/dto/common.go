package dto

// BulkDeleteRequest carries the id list for bulk delete endpoints.
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1,dive,min=1"`
}

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries structured per-field validation errors.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
