package helpers

import (
	"strings"

	"github.com/google/uuid"
)

const ConfirmationCodePrefix = "BK-"

// GenerateConfirmationCode returns a code like BK-1A2B3C4D.
func GenerateConfirmationCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return ConfirmationCodePrefix + strings.ToUpper(raw[:8])
}
