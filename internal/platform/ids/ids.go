// Package ids generates record identifiers. Identifiers are opaque to the
// rest of the system; only uniqueness matters.
package ids

import "github.com/google/uuid"

func New() string {
	return uuid.NewString()
}
