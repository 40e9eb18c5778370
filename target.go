package wirehttp

import (
	"os"
	"strings"
)

// Target is a request target plus an optional originating URI used for the
// Referer header. Construct one with Plain or WithReferer.
type Target struct {
	uri     string
	referer string
}

// Plain is a bare target; the referer falls back to the HTTP_REFERER
// environment value when set, else to the target itself.
func Plain(uri string) Target {
	return Target{uri: uri}
}

// WithReferer is a target with an explicit originating URI.
func WithReferer(uri, referer string) Target {
	return Target{uri: uri, referer: referer}
}

func (t Target) URI() string {
	return t.uri
}

func (t Target) Referer() string {
	if t.referer != "" {
		return t.referer
	}
	if prev := os.Getenv("HTTP_REFERER"); prev != "" {
		return prev
	}
	return t.uri
}

var targetEscaper = strings.NewReplacer(" ", "%20", "\t", "%09")

// escapeTarget applies the minimal escaping the request line needs: literal
// spaces and tabs would break the three-field line shape. Everything else is
// sent as given.
func escapeTarget(s string) string {
	return targetEscaper.Replace(s)
}
