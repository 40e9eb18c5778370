package wirehttp

import (
	"bufio"
	"io"
	"strings"
)

// Conn wraps an already-open bidirectional byte stream (typically a net.Conn)
// with the line-oriented read, raw write and flush operations the exchange
// needs. Conn never dials and never closes: the caller owns the stream's
// lifetime and must impose any deadlines on the underlying connection.
type Conn struct {
	br    *bufio.Reader
	bw    *bufio.Writer
	proxy bool
}

// NewConn wraps rw for direct (origin-server) requests.
func NewConn(rw io.ReadWriter) *Conn {
	return &Conn{
		br: bufio.NewReader(rw),
		bw: bufio.NewWriter(rw),
	}
}

// NewProxyConn wraps rw for requests sent through an HTTP proxy. In proxy
// mode the request line carries the full absolute target URI instead of just
// the local path.
func NewProxyConn(rw io.ReadWriter) *Conn {
	c := NewConn(rw)
	c.proxy = true
	return c
}

// Proxy reports whether the connection is operating in proxy mode.
func (c *Conn) Proxy() bool {
	return c.proxy
}

// ReadLine reads one line from the connection, stripping the trailing CRLF
// or LF. io.EOF with no buffered data is returned as io.EOF; a final
// unterminated line is returned as a line.
func (c *Conn) ReadLine() (string, error) {
	line, err := c.br.ReadString('\n')
	if err != nil {
		if len(line) == 0 {
			return "", err
		}
		// unterminated trailing line
	}
	if int64(len(line)) > maxLineSize {
		return "", New(ErrLineTooLong, "")
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func (c *Conn) Write(p []byte) (int, error) {
	return c.bw.Write(p)
}

func (c *Conn) WriteString(s string) (int, error) {
	return c.bw.WriteString(s)
}

// Flush pushes buffered request bytes to the underlying stream.
func (c *Conn) Flush() error {
	return c.bw.Flush()
}

// Reader exposes the unread remainder of the input side, buffered data
// included. Used to hand the response body to the caller after the status
// line and headers have been consumed.
func (c *Conn) Reader() io.Reader {
	return c.br
}
