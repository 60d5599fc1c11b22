// Package apierror provides the canonical response envelope for the API.
// Every /api response — success or failure — goes through this package so
// clients always see {success, data?, error?} and internal details (stack
// traces, DB errors) never leak.
package apierror

// Envelope is the canonical body of every API response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK wraps a payload in a success envelope.
func OK(data interface{}) *Envelope {
	return &Envelope{Success: true, Data: data}
}

// New builds a failure envelope with a client-safe message.
func New(msg string) *Envelope {
	return &Envelope{Success: false, Error: msg}
}

// ValidationError is a failure envelope carrying per-field errors.
type ValidationError struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Success: false, Error: "validation failed", Fields: fields}
}
