package parser

import "strings"

// cookString converts a string literal spelling (prefix, quotes, escapes)
// to its contents. The cooked form is only a fallback; emission prefers the
// exact spelling recovered from the token stream.
func cookString(spelling string) string {
	i := 0
	for i < len(spelling) && spelling[i] != '"' && spelling[i] != '\'' {
		i++
	}
	if i >= len(spelling) {
		return spelling
	}
	prefix := strings.ToLower(spelling[:i])
	body := spelling[i:]
	raw := strings.Contains(prefix, "r")

	quote := body[0]
	closer := string(quote)
	if len(body) >= 3 && body[1] == quote && body[2] == quote {
		closer = strings.Repeat(string(quote), 3)
	}
	body = strings.TrimPrefix(body, closer)
	body = strings.TrimSuffix(body, closer)

	if raw || !strings.Contains(body, "\\") {
		return body
	}
	return unescape(body)
}

func unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i == len(s)-1 {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		case 'a':
			b.WriteByte(7)
		case 'b':
			b.WriteByte(8)
		case 'f':
			b.WriteByte(12)
		case 'v':
			b.WriteByte(11)
		case '\\', '\'', '"':
			b.WriteByte(s[i])
		case '\n':
			// escaped physical newline joins the lines
		default:
			// unknown escapes keep the backslash
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
