package shared

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a new unique record identifier
func GenerateID() string {
	return uuid.NewString()
}

// ParseID parses a record identifier, reporting a validation error naming field on failure
func ParseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, NewDomainError(CodeInvalidInput, "Invalid "+field+" id")
	}
	return id, nil
}
