package state

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	base36       = "0123456789abcdefghijklmnopqrstuvwxyz"
	idSuffixSize = 9
)

// NewID returns an identifier of the form "<unix millis>-<9 base36 chars>".
// Uniqueness is best-effort.
func NewID(now time.Time) string {
	var b strings.Builder

	b.WriteString(strconv.FormatInt(now.UnixMilli(), 10))
	b.WriteByte('-')

	for range idSuffixSize {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}

	return b.String()
}
