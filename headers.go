package wirehttp

import (
	"io"
	"net/textproto"
	"strings"
)

// HeaderName constants for type-safe header operations
const (
	HeaderAccept                  = "Accept"
	HeaderAuthorization           = "Authorization"
	HeaderContentLength           = "Content-Length"
	HeaderContentType             = "Content-Type"
	HeaderContentTransferEncoding = "Content-Transfer-Encoding"
	HeaderHost                    = "Host"
	HeaderLocation                = "Location"
	HeaderReferer                 = "Referer"
	HeaderUserAgent               = "User-Agent"
	HeaderWWWAuthenticate         = "Www-Authenticate"
)

// ContentType constants
const (
	ContentTypeForm        = "application/x-www-form-urlencoded"
	ContentTypeJSON        = "application/json"
	ContentTypePlain       = "text/plain; charset=utf-8"
	ContentTypeOctetStream = "application/octet-stream"
)

type headerField struct {
	name  string // canonical form
	value string
}

// Header is an insertion-ordered multimap of header fields. Lookup is
// case-insensitive: names are normalized to canonical MIME form on the way in.
type Header struct {
	fields []headerField
}

func NewHeader() *Header {
	return &Header{}
}

// Add appends a value for name, keeping any existing values.
func (h *Header) Add(name, value string) {
	h.fields = append(h.fields, headerField{textproto.CanonicalMIMEHeaderKey(name), value})
}

// Supersede replaces every existing value for name with the single given
// value. The field keeps the position of its first occurrence; an absent
// name is appended.
func (h *Header) Supersede(name, value string) {
	canon := textproto.CanonicalMIMEHeaderKey(name)
	out := h.fields[:0]
	replaced := false
	for _, f := range h.fields {
		if f.name != canon {
			out = append(out, f)
			continue
		}
		if !replaced {
			out = append(out, headerField{canon, value})
			replaced = true
		}
	}
	h.fields = out
	if !replaced {
		h.fields = append(h.fields, headerField{canon, value})
	}
}

// Get returns the first value for name, or "".
func (h *Header) Get(name string) string {
	canon := textproto.CanonicalMIMEHeaderKey(name)
	for _, f := range h.fields {
		if f.name == canon {
			return f.value
		}
	}
	return ""
}

// Values returns every value for name in insertion order.
func (h *Header) Values(name string) []string {
	canon := textproto.CanonicalMIMEHeaderKey(name)
	var vals []string
	for _, f := range h.fields {
		if f.name == canon {
			vals = append(vals, f.value)
		}
	}
	return vals
}

func (h *Header) Has(name string) bool {
	canon := textproto.CanonicalMIMEHeaderKey(name)
	for _, f := range h.fields {
		if f.name == canon {
			return true
		}
	}
	return false
}

// Del removes every value for name.
func (h *Header) Del(name string) {
	canon := textproto.CanonicalMIMEHeaderKey(name)
	out := h.fields[:0]
	for _, f := range h.fields {
		if f.name != canon {
			out = append(out, f)
		}
	}
	h.fields = out
}

// Len returns the number of header fields (not distinct names).
func (h *Header) Len() int {
	return len(h.fields)
}

// Merge folds other into h with supersede semantics: for every name present
// in other, other's values replace h's values for that name. Names absent
// from other are untouched.
func (h *Header) Merge(other *Header) {
	if other == nil {
		return
	}
	seen := make(map[string]bool, len(other.fields))
	for _, f := range other.fields {
		if !seen[f.name] {
			h.Del(f.name)
			seen[f.name] = true
		}
		h.fields = append(h.fields, f)
	}
}

// WriteTo serializes the fields as "Name: value\r\n" lines in insertion
// order. The blank line terminating a header block is the caller's business.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, f := range h.fields {
		n, err := io.WriteString(w, f.name+": "+f.value+"\r\n")
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// readHeaders consumes response header lines from c up to the blank line
// terminating the block, unfolding RFC 822 continuation lines (a line
// beginning with space or tab extends the previous field's value). End of
// input mid-block returns whatever was gathered. Lines with no colon are
// ignored.
func readHeaders(c *Conn) (*Header, error) {
	h := NewHeader()
	for {
		line, err := c.ReadLine()
		if err != nil {
			if err == io.EOF {
				return h, nil
			}
			return h, err
		}
		if line == "" {
			return h, nil
		}
		if line[0] == ' ' || line[0] == '\t' {
			// continuation of the previous field
			if n := len(h.fields); n > 0 {
				h.fields[n-1].value += " " + strings.TrimLeft(line, " \t")
			}
			continue
		}
		if h.Len() >= maxHeaderCount {
			return h, New(ErrHeaderTooLarge, "")
		}
		name, value, found := strings.Cut(line, ":")
		if !found || name == "" {
			continue
		}
		h.Add(name, strings.TrimSpace(value))
	}
}
