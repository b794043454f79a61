package validator

import (
	"strings"

	"github.com/google/uuid"
)

// UUID reports whether s is a UUID in the canonical 36 character form.
func UUID(s string) bool {
	if len(s) != 36 || strings.TrimSpace(s) != s {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// UUIDVersion reports whether id has the given version and is not uuid.Nil.
func UUIDVersion(version int) func(uuid.UUID) bool {
	return func(id uuid.UUID) bool {
		return id != uuid.Nil && int(id.Version()) == version
	}
}

func NotNilUUID(id uuid.UUID) bool {
	return id != uuid.Nil
}
