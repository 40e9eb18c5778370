package wirehttp

import "testing"

func TestAuthorityLookup(t *testing.T) {
	table := NewAuthorityTable()
	table.Add("a.com", 80, "/x")
	table.Add("a.com", 80, "/x/y")
	table.Add("a.com", 443, "/x")

	// longest matching prefix wins
	if a, ok := table.Find("a.com", 80, "/x/y/z"); !ok || a.PathPrefix != "/x/y" {
		t.Errorf("Find(/x/y/z) = %+v, %v; want the /x/y entry", a, ok)
	}

	// no prefix matches
	if a, ok := table.Find("a.com", 80, "/z"); ok {
		t.Errorf("Find(/z) = %+v; want absent", a)
	}

	// the /x/y entry was registered under port 80, so port 443 only sees /x
	if a, ok := table.Find("a.com", 443, "/x/y"); !ok || a.PathPrefix != "/x" {
		t.Errorf("Find(443, /x/y) = %+v, %v; want the /x entry", a, ok)
	}

	// host mismatch is absent
	if _, ok := table.Find("b.com", 80, "/x"); ok {
		t.Error("Find(b.com) should be absent")
	}
}

func TestAuthorityEqualLengthKeepsFirst(t *testing.T) {
	table := NewAuthorityTable()
	first := table.Add("a.com", 80, "/x")
	first.Credential = "first"
	second := table.Add("a.com", 80, "/x")
	second.Credential = "second"

	a, ok := table.Find("a.com", 80, "/x/file")
	if !ok || a.Credential != "first" {
		t.Errorf("equal-length duplicate resolved to %+v; want the first inserted", a)
	}
}

func TestAuthorityAppendsUnconditionally(t *testing.T) {
	table := NewAuthorityTable()
	table.Add("a.com", 80, "/x")
	table.Add("a.com", 80, "/x")
	if table.Len() != 2 {
		t.Errorf("Len = %d, want 2 (no dedup)", table.Len())
	}
}

func TestAuthorityEmptyPrefixMatchesEverything(t *testing.T) {
	table := NewAuthorityTable()
	table.Add("a.com", 80, "")
	table.Add("a.com", 80, "/private")

	if a, ok := table.Find("a.com", 80, "/anything"); !ok || a.PathPrefix != "" {
		t.Errorf("Find(/anything) = %+v, %v; want the empty-prefix entry", a, ok)
	}
	if a, ok := table.Find("a.com", 80, "/private/doc"); !ok || a.PathPrefix != "/private" {
		t.Errorf("Find(/private/doc) = %+v, %v; want the /private entry", a, ok)
	}
}
