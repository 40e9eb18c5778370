package wirehttp

import (
	"io"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/form/v4"
	"github.com/google/uuid"
)

// RequestInfo is the outgoing request as seen by hooks, just before it is
// written to the wire. Hooks may mutate the header collection.
type RequestInfo struct {
	Method  string
	Target  string // escaped target as it will appear in proxy mode
	URL     *url.URL
	Version string
	Header  *Header
}

// RequestHook runs against every outgoing request. Hooks run in the order
// they were added.
type RequestHook func(*RequestInfo)

// Client issues synchronous request/response exchanges over a single Conn.
// Each call fully writes the request, then blocks reading the response.
// Nothing here multiplexes: one exchange at a time per connection.
type Client struct {
	conn  *Conn
	hooks []RequestHook
}

func NewClient(conn *Conn) *Client {
	return &Client{conn: conn}
}

// Use adds a request hook to the client.
func (c *Client) Use(h RequestHook) {
	c.hooks = append(c.hooks, h)
}

// Field is one POST form field. Fields are a slice, not a map, so the body
// line order is the caller's insertion order.
type Field struct {
	Name  string
	Value string
}

// Do writes one request and reads back the status line and headers. The
// response body, if any, is left unread on the connection (see Fetch).
//
// method is normalized to upper case and must be a valid header token.
// version defaults to HTTP/1.0 when empty. Caller headers are merged over
// the generated Accept/Referer/Host defaults with supersede semantics. body,
// when non-nil, is copied to the wire after the header block. Non-2xx
// statuses are not errors: the response is returned faithfully.
func (c *Client) Do(method string, target Target, hdr *Header, body io.Reader, version string) (*Response, error) {
	requestID := uuid.NewString()

	method = strings.ToUpper(strings.TrimSpace(method))
	if tok, rest, ok := Token(method); !ok || rest != "" || tok != method {
		return nil, Newf(ErrBadMethod, "invalid method %q", method)
	}

	raw := escapeTarget(target.URI())
	u, err := url.Parse(raw)
	if err != nil {
		return nil, Wrapf(err, ErrBadTarget, "cannot parse target %q", raw)
	}
	if version == "" {
		version = DefaultVersion
	}

	out := NewHeader()
	out.Add(HeaderAccept, "*/*")
	out.Add(HeaderReferer, target.Referer())
	if u.Host != "" {
		out.Add(HeaderHost, u.Host)
	}
	out.Merge(hdr)

	info := &RequestInfo{
		Method:  method,
		Target:  raw,
		URL:     u,
		Version: version,
		Header:  out,
	}
	for _, hook := range c.hooks {
		hook(info)
	}

	// Proxies need the full absolute URI on the request line; origin
	// servers get the local part only.
	lineTarget := raw
	if !c.conn.Proxy() {
		lineTarget = u.RequestURI()
	}

	if logger != nil {
		logger.Debug().
			Str("request_id", requestID).
			Str("method", method).
			Str("target", raw).
			Msg("[wirehttp] sending request")
	}

	if _, err := c.conn.WriteString(method + " " + lineTarget + " " + version + "\r\n"); err != nil {
		return nil, Wrap(err, ErrConnWrite, "")
	}
	if _, err := out.WriteTo(c.conn); err != nil {
		return nil, Wrap(err, ErrConnWrite, "")
	}
	if _, err := c.conn.WriteString("\r\n"); err != nil {
		return nil, Wrap(err, ErrConnWrite, "")
	}
	if body != nil {
		if _, err := io.Copy(c.conn, body); err != nil {
			return nil, Wrap(err, ErrConnWrite, "request body")
		}
	}
	if err := c.conn.Flush(); err != nil {
		return nil, Wrap(err, ErrConnWrite, "flush")
	}

	line, err := c.conn.ReadLine()
	if err == io.EOF || (err == nil && line == "") {
		if logger != nil {
			logger.Warn().
				Str("request_id", requestID).
				Str("target", raw).
				Msg("[wirehttp] no response from server")
		}
		return nil, New(ErrNoResponse, "")
	}
	if err != nil {
		return nil, Wrap(err, ErrConnRead, "status line")
	}

	rspVersion, code, text, ok := parseStatusLine(line)
	if !ok {
		if logger != nil {
			logger.Warn().
				Str("request_id", requestID).
				Str("target", raw).
				Str("line", line).
				Msg("[wirehttp] malformed response line")
		}
		return nil, Newf(ErrMalformedResponse, "malformed response line %q", line)
	}

	rspHeader, err := readHeaders(c.conn)
	if err != nil {
		return nil, Wrap(err, ErrConnRead, "response headers")
	}

	return &Response{
		Version:    rspVersion,
		StatusCode: code,
		StatusText: text,
		Header:     rspHeader,
	}, nil
}

// Get issues a GET for the target.
func (c *Client) Get(target Target) (*Response, error) {
	return c.Do("GET", target, nil, nil, "")
}

// Post URL-encodes the fields into `name=value` lines, one field per line in
// slice order, and issues a POST with that body.
func (c *Client) Post(target Target, fields []Field) (*Response, error) {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, Hexify(f.Name, UnsafeQueryByte)+"="+Hexify(f.Value, UnsafeQueryByte))
	}
	body := strings.Join(lines, "\n")

	hdr := NewHeader()
	hdr.Add(HeaderContentType, ContentTypeForm)
	hdr.Add(HeaderContentLength, strconv.Itoa(len(body)))
	return c.Do("POST", target, hdr, strings.NewReader(body), "")
}

// PostForm encodes a struct or map into fields and posts them. Field order
// is sorted by name, since the encoder hands back an unordered value map.
func (c *Client) PostForm(target Target, v interface{}) (*Response, error) {
	fields, err := EncodeFields(v)
	if err != nil {
		return nil, err
	}
	return c.Post(target, fields)
}

var formEncoder = form.NewEncoder()

// EncodeFields flattens a struct or map into POST fields in sorted name
// order.
func EncodeFields(v interface{}) ([]Field, error) {
	values, err := formEncoder.Encode(v)
	if err != nil {
		return nil, Wrap(err, ErrInvalidForm, "")
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	var fields []Field
	for _, name := range names {
		for _, value := range values[name] {
			fields = append(fields, Field{name, value})
		}
	}
	return fields, nil
}

// Fetch performs Do and, when the status is exactly 200, hands back the
// response body stream, decoded per any Content-Transfer-Encoding header.
// Any other status yields a nil reader, not an error: callers check for
// presence.
func (c *Client) Fetch(method string, target Target, hdr *Header, body io.Reader) (*Response, io.Reader, error) {
	rsp, err := c.Do(method, target, hdr, body, "")
	if err != nil {
		return nil, nil, err
	}
	if !rsp.Ok() {
		return rsp, nil, nil
	}
	r := c.conn.Reader()
	if enc := rsp.Header.Get(HeaderContentTransferEncoding); enc != "" {
		r, err = decodeBody(r, enc)
		if err != nil {
			return rsp, nil, err
		}
	}
	return rsp, r, nil
}

// GetJSON fetches the target and decodes a 200 body into out. A non-200
// response is reported as ErrNoBody with the response still returned.
func (c *Client) GetJSON(target Target, out interface{}) (*Response, error) {
	rsp, body, err := c.Fetch("GET", target, nil, nil)
	if err != nil {
		return rsp, err
	}
	if body == nil {
		return rsp, Newf(ErrNoBody, "status %d %s", rsp.StatusCode, rsp.StatusText)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return rsp, Wrap(err, ErrConnRead, "response body")
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return rsp, Wrap(err, ErrInvalidJSON, "")
	}
	return rsp, nil
}
