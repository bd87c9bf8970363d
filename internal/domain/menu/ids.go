package menu

import "github.com/google/uuid"

// IsValidID reports whether id is a hyphenated UUID, the only form stored in
// id columns. Anything else cannot match a row.
func IsValidID(id string) bool {
	return len(id) == 36 && uuid.Validate(id) == nil
}
