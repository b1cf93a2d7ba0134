package ordering

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify maps a display name to a URL-safe identifier. It is Unicode
// aware: Arabic and other non-Latin letters survive, only symbols are
// dropped. Pure and idempotent; an empty result means the name cannot
// produce a slug and the caller must treat that as a validation failure
// (an empty slug would collide with every other empty-sluggable row).
func Slugify(name string) string {
	normalized := strings.ToLower(norm.NFKC.String(name))

	var b strings.Builder
	b.Grow(len(normalized))
	pendingHyphen := false
	for _, r := range normalized {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingHyphen = true
		}
	}
	return b.String()
}
