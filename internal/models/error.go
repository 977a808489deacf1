package models

// APIError is the wire format for every error response.
type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewAPIError creates an error response with an optional details string
func NewAPIError(message string, details ...string) APIError {
	err := APIError{Error: message}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
