package dto

// SuccessResponse represents a standard success envelope with a message
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DataResponse represents a standard success envelope carrying a payload
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// MessageResponse is a bare message body used by the notification stubs
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents the standard error envelope. Details and Code are
// only populated on internal errors, echoing driver diagnostics to the client.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

// NewErrorResponse creates an error envelope with just a message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// Pagination carries paging metadata for list endpoints
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// PaginatedResponse wraps a page of rows with its metadata
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}
