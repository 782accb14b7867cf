package transport

import "encoding/json"

// Envelope is the standard API response wrapper: {ok, data?, message?}.
type Envelope struct {
	OK      bool        `json:"ok"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// NewSuccess returns a success envelope with optional message.
func NewSuccess(data interface{}, message string) Envelope {
	return Envelope{
		OK:      true,
		Data:    data,
		Message: message,
	}
}

// NewFail returns a client-facing failure envelope (validation, not found).
func NewFail(message string) Envelope {
	return Envelope{
		OK:      false,
		Message: message,
	}
}

// ServerError is the body emitted by the centralized error handler for
// faults that are not the client's doing.
type ServerError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewServerError builds the server-fault body, falling back to a generic
// message when none is provided.
func NewServerError(message string) ServerError {
	if message == "" {
		message = "internal server error"
	}
	return ServerError{
		Status:  "Error",
		Message: message,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
