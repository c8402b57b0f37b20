package destination

import "strings"

// Pad surrounds text with a single leading and trailing space so a pasted
// link never fuses with adjacent characters. Idempotent: already-padded text
// is returned unchanged, so a space never accumulates beyond one on either
// side.
func Pad(text string) string {
	if !strings.HasPrefix(text, " ") {
		text = " " + text
	}
	if !strings.HasSuffix(text, " ") {
		text += " "
	}
	return text
}
