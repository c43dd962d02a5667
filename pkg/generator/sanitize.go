package generator

import "strings"

// SanitizeComponentName turns an arbitrary Figma layer name into a valid
// component identifier: every character outside [A-Za-z0-9] is stripped, a
// digit-led result is prefixed with "Component", and the first character is
// upper-cased. An empty result becomes the literal "Component".
//
// The function is idempotent: sanitizing an already-sanitized name returns
// it unchanged.
func SanitizeComponentName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	s := b.String()
	if s == "" {
		return "Component"
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "Component" + s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
