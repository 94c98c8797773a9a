package order

import (
	"strings"

	"github.com/google/uuid"
)

// NumberLength is the fixed length of an order number.
const NumberLength = 8

// newNumber derives an 8-character uppercase order number from a random
// UUID. Uniqueness is enforced by the order repository's unique index; the
// random source makes collisions on insert practically unobservable.
func newNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:NumberLength])
}
