package wirehttp

// Small recursive-descent parsers over the RFC 822 / HTTP header grammar.
// Each one consumes a prefix of the input after skipping leading linear
// whitespace and returns the parsed value plus the unconsumed remainder.
// A failed match returns ok=false with the input untouched, so callers can
// try an alternative production or keep the remainder as literal text.

// tspecials per the HTTP/1.0 grammar, plus SP and HT.
const tspecials = "()<>@,;:\\\"/[]?={} \t"

func isCtl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

func isTokenChar(b byte) bool {
	if isCtl(b) {
		return false
	}
	for i := 0; i < len(tspecials); i++ {
		if b == tspecials[i] {
			return false
		}
	}
	return true
}

func skipLWS(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	return s
}

// Token matches one-or-more token characters.
func Token(s string) (tok, rest string, ok bool) {
	t := skipLWS(s)
	i := 0
	for i < len(t) && isTokenChar(t[i]) {
		i++
	}
	if i == 0 {
		return "", s, false
	}
	return t[:i], t[i:], true
}

// QuotedString matches a double-quoted span whose interior is made of
// folding sequences (optional CRLF followed by required space or tab) or any
// character except '"' and controls. By default the quotes are stripped and
// folding sequences are left intact; keepQuotes returns the span verbatim.
func QuotedString(s string, keepQuotes bool) (val, rest string, ok bool) {
	t := skipLWS(s)
	if len(t) == 0 || t[0] != '"' {
		return "", s, false
	}
	i := 1
	for i < len(t) {
		c := t[i]
		switch {
		case c == '"':
			if keepQuotes {
				return t[:i+1], t[i+1:], true
			}
			return t[1:i], t[i+1:], true
		case c == ' ' || c == '\t':
			i++
		case c == '\r':
			if i+2 < len(t) && t[i+1] == '\n' && (t[i+2] == ' ' || t[i+2] == '\t') {
				i += 3
			} else {
				return "", s, false
			}
		case isCtl(c):
			return "", s, false
		default:
			i++
		}
	}
	// unterminated
	return "", s, false
}

// Word matches a token or a quoted string.
func Word(s string, keepQuotes bool) (val, rest string, ok bool) {
	if val, rest, ok = Token(s); ok {
		return val, rest, true
	}
	return QuotedString(s, keepQuotes)
}

// Attr is one name=value attribute from a comma-separated list.
type Attr struct {
	Name  string
	Value string
}

// TokenList matches comma-separated `token = word` attributes, gathering
// them in order. Parsing is permissive: it stops at the first pair that does
// not fit the name=value shape and hands the unconsumed remainder back for
// the caller to notice or ignore.
func TokenList(s string) (attrs []Attr, rest string) {
	name, value, r, ok := parseAttr(s)
	if !ok {
		return nil, s
	}
	for {
		attrs = append(attrs, Attr{name, value})
		s = r
		t := skipLWS(s)
		if len(t) == 0 || t[0] != ',' {
			return attrs, s
		}
		name, value, r, ok = parseAttr(t[1:])
		if !ok {
			return attrs, s
		}
	}
}

func parseAttr(s string) (name, value, rest string, ok bool) {
	name, r, ok := Token(s)
	if !ok {
		return "", "", s, false
	}
	r = skipLWS(r)
	if len(r) == 0 || r[0] != '=' {
		return "", "", s, false
	}
	value, r, ok = Word(r[1:], false)
	if !ok {
		return "", "", s, false
	}
	return name, value, r, true
}
