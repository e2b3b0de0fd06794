package bibtex

import "strings"

// NormalizeValue strips the delimiters around a raw field value: one layer of
// double quotes, then as many layers of braces as enclose the whole value.
// Normalizing an already normalized value returns it unchanged.
func NormalizeValue(raw string) string {
	value := strings.TrimSpace(raw)
	if strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = stripLayer(value)
	}
	for strings.HasPrefix(value, "{") && strings.HasSuffix(value, "}") {
		value = stripLayer(value)
	}
	return value
}

// stripLayer drops the first and last byte and trims. A lone delimiter
// strips to the empty string.
func stripLayer(value string) string {
	if len(value) < 2 {
		return ""
	}
	return strings.TrimSpace(value[1 : len(value)-1])
}

// stripEnclosingBraces removes one pair of braces when the opening brace is
// closed by the final character, so "{van Dyke}" becomes "van Dyke" but
// "{A} and {B}" is left alone.
func stripEnclosingBraces(s string) string {
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return s
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 && i != len(s)-1 {
				return s
			}
		}
	}
	if depth != 0 {
		return s
	}
	return s[1 : len(s)-1]
}
