package wirehttp

import (
	"encoding/base64"
	"strconv"
)

// WithAuthority returns a hook that consults the table for a scope matching
// the request's host, port and path and, on a hit, injects a Basic
// Authorization header built from the entry's user:password credential. A
// caller-supplied Authorization header always wins.
func WithAuthority(table *AuthorityTable) RequestHook {
	return func(info *RequestInfo) {
		if table == nil || info.URL == nil || info.URL.Host == "" {
			return
		}
		if info.Header.Has(HeaderAuthorization) {
			return
		}
		port := DefaultPort
		if p := info.URL.Port(); p != "" {
			n, err := strconv.Atoi(p)
			if err != nil {
				return
			}
			port = n
		}
		auth, ok := table.Find(info.URL.Hostname(), port, info.URL.Path)
		if !ok || auth.Credential == "" {
			return
		}
		info.Header.Add(HeaderAuthorization,
			"Basic "+base64.StdEncoding.EncodeToString([]byte(auth.Credential)))
	}
}

// WithUserAgent returns a hook that sets a default User-Agent unless the
// caller supplied one.
func WithUserAgent(agent string) RequestHook {
	return func(info *RequestInfo) {
		if !info.Header.Has(HeaderUserAgent) {
			info.Header.Add(HeaderUserAgent, agent)
		}
	}
}
