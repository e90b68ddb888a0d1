package slider

import (
	"strings"

	"github.com/google/uuid"
)

// newID returns a fresh instance identifier. The "d" prefix keeps the id a
// valid CSS identifier, which must not start with a digit.
func newID() string {
	return "d" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
