package wirehttp

// Response is the parsed result of one exchange: protocol version, status
// code with reason text, and the response header block. Ownership passes
// entirely to the caller; the body, if any, stays on the connection.
type Response struct {
	Version    string
	StatusCode int
	StatusText string
	Header     *Header
}

// Ok reports whether the status code is exactly 200.
func (r *Response) Ok() bool {
	return r.StatusCode == StatusOK
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// parseStatusLine matches `HTTP/<digits>.<digits> <3-digit-code> <reason>`.
// Reason text may be empty; trailing whitespace is tolerated. Anything else
// is a malformed response.
func parseStatusLine(line string) (version string, code int, text string, ok bool) {
	const prefix = "HTTP/"
	if len(line) <= len(prefix) || line[:len(prefix)] != prefix {
		return "", 0, "", false
	}
	i := len(prefix)
	j := i
	for j < len(line) && isDigit(line[j]) {
		j++
	}
	if j == i || j >= len(line) || line[j] != '.' {
		return "", 0, "", false
	}
	k := j + 1
	for k < len(line) && isDigit(line[k]) {
		k++
	}
	if k == j+1 {
		return "", 0, "", false
	}
	version = line[:k]

	if k >= len(line) || (line[k] != ' ' && line[k] != '\t') {
		return "", 0, "", false
	}
	rest := line[k:]
	for len(rest) > 0 && (rest[0] == ' ' || rest[0] == '\t') {
		rest = rest[1:]
	}
	if len(rest) < 3 || !isDigit(rest[0]) || !isDigit(rest[1]) || !isDigit(rest[2]) {
		return "", 0, "", false
	}
	// a fourth digit would make this something other than a 3-digit code
	if len(rest) > 3 && rest[3] != ' ' && rest[3] != '\t' {
		return "", 0, "", false
	}
	code = int(rest[0]-'0')*100 + int(rest[1]-'0')*10 + int(rest[2]-'0')
	text = rest[3:]
	for len(text) > 0 && (text[0] == ' ' || text[0] == '\t') {
		text = text[1:]
	}
	for len(text) > 0 && (text[len(text)-1] == ' ' || text[len(text)-1] == '\t') {
		text = text[:len(text)-1]
	}
	return version, code, text, true
}
