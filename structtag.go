package argparse

import (
	"strings"
)

// parseTag splits the inside of an args struct tag into keys and values.
// Values may be single-quoted to contain commas; spaces in keys are ignored.
func parseTag(tag string) map[string]string {
	ret := map[string]string{}

	key := strings.Builder{}
	val := strings.Builder{}
	inKey := true
	inQuote := false
	flush := func() {
		ret[key.String()] = val.String()
		key.Reset()
		val.Reset()
		inKey = true
	}
	for _, c := range tag {
		switch {
		case inKey && c == ',':
			flush()
		case inKey && c == '=':
			inKey = false
		case inKey && c == ' ':
		case inKey:
			key.WriteRune(c)
		case inQuote && c == '\'':
			inQuote = false
		case inQuote:
			val.WriteRune(c)
		case c == ',':
			flush()
		case c == '\'':
			inQuote = true
		default:
			val.WriteRune(c)
		}
	}
	if key.Len() > 0 {
		flush()
	}
	return ret
}
