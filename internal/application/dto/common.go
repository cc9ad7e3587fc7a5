package dto

// ErrorResponse HTTP error body. Message is a domain-level reason and never
// carries raw store errors.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
