package parser

import "strings"

// builtInDateFormats holds the built-in number format ids that render dates or times.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
	71: true, 72: true, 73: true, 74: true, 75: true, 76: true, 77: true, 78: true, 79: true, 80: true, 81: true,
}

// isDateFormatCode reports whether a custom number format code renders a date.
// Quoted literals, escaped characters and bracketed sections are ignored.
func isDateFormatCode(code string) bool {
	// Only the first section applies to positive numbers.
	if idx := strings.Index(code, ";"); idx >= 0 {
		code = code[:idx]
	}

	var b strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		default:
			b.WriteByte(c)
		}
	}

	stripped := strings.ToLower(b.String())
	if stripped == "general" {
		return false
	}
	return strings.ContainsAny(stripped, "ydmhs")
}
