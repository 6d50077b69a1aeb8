package ulid

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

func New() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// NewMarkupID returns a unique, lower-case element id with the given prefix.
func NewMarkupID(prefix string) string {
	return prefix + "-" + strings.ToLower(New())
}
