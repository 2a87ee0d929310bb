package shared

// DeleteOutcome is the result of a destructive operation. When
// RequiresConfirmation is set nothing was removed and the caller must repeat
// the request with confirmation.
type DeleteOutcome struct {
	Deleted              bool   `json:"deleted"`
	RequiresConfirmation bool   `json:"requiresConfirmation"`
	Message              string `json:"message"`
}

// ConfirmationRequired returns an outcome asking the caller to confirm
func ConfirmationRequired(message string) *DeleteOutcome {
	return &DeleteOutcome{RequiresConfirmation: true, Message: message}
}

// Deleted returns an outcome reporting a completed removal
func Deleted(message string) *DeleteOutcome {
	return &DeleteOutcome{Deleted: true, Message: message}
}
