package domain

import (
	"fmt"
	"strings"
)

// ValidateRunID rejects IDs that cannot be used as a key and a file name:
// empty, "." or "..", or containing a path separator.
func ValidateRunID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidRunID, id)
	}
	return nil
}
