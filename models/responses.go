package models

// MessageResponse is the success body of POST and DELETE requests.
type MessageResponse struct {
	// Message is "Created", "Updated" or "Deleted".
	Message string `json:"message"`

	// ID is the effective transaction identifier. Omitted on delete.
	ID string `json:"id,omitempty"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}
