package order

import (
	"strings"

	"github.com/google/uuid"
)

// NewCode returns a fresh 8-character uppercase order code, the first hex
// octet group of a v4 UUID. Collisions are possible but negligible at café
// volumes; uniqueness is not enforced against stored orders.
func NewCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
