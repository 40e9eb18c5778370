package wirehttp

import "strings"

// Authority is one protection scope: a credential bound to a host, port and
// path prefix. Credential is opaque to the table; WithAuthority treats it as
// the user:password pair of a Basic challenge.
type Authority struct {
	Host       string
	Port       int
	PathPrefix string
	Credential string
}

// AuthorityTable is an insertion-ordered list of protection scopes. It is an
// explicit value owned by the caller, not process-wide state, and carries no
// concurrency guard: callers in a multi-threaded host serialize access
// themselves. Entries are append-only.
type AuthorityTable struct {
	entries []*Authority
}

func NewAuthorityTable() *AuthorityTable {
	return &AuthorityTable{}
}

// Add appends a new scope unconditionally (no dedup) and returns it so the
// caller can attach a credential.
func (t *AuthorityTable) Add(host string, port int, pathPrefix string) *Authority {
	a := &Authority{Host: host, Port: port, PathPrefix: pathPrefix}
	t.entries = append(t.entries, a)
	return a
}

// Find returns the scope with the longest path prefix of path among entries
// whose host and port match exactly. A strictly longer prefix replaces the
// current best during the scan; equal lengths keep the earlier entry. Tables
// are small (credential scopes, not request volume), so a linear scan is
// enough.
func (t *AuthorityTable) Find(host string, port int, path string) (*Authority, bool) {
	var best *Authority
	for _, a := range t.entries {
		if a.Host != host || a.Port != port {
			continue
		}
		if !strings.HasPrefix(path, a.PathPrefix) {
			continue
		}
		if best == nil || len(a.PathPrefix) > len(best.PathPrefix) {
			best = a
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

func (t *AuthorityTable) Len() int {
	return len(t.entries)
}
