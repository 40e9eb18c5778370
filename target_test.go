package wirehttp

import "testing"

func TestTargetReferer(t *testing.T) {
	t.Run("explicit referer wins", func(t *testing.T) {
		t.Setenv("HTTP_REFERER", "http://env.page/")
		tgt := WithReferer("http://a.com/x", "http://a.com/prev")
		if got := tgt.Referer(); got != "http://a.com/prev" {
			t.Errorf("Referer = %q", got)
		}
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv("HTTP_REFERER", "http://env.page/")
		if got := Plain("http://a.com/x").Referer(); got != "http://env.page/" {
			t.Errorf("Referer = %q", got)
		}
	})

	t.Run("target itself as last resort", func(t *testing.T) {
		t.Setenv("HTTP_REFERER", "")
		if got := Plain("http://a.com/x").Referer(); got != "http://a.com/x" {
			t.Errorf("Referer = %q", got)
		}
	})
}

func TestEscapeTarget(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"http://a.com/plain", "http://a.com/plain"},
		{"http://a.com/a b", "http://a.com/a%20b"},
		{"http://a.com/a\tb", "http://a.com/a%09b"},
		// escaping is intentionally partial: nothing else is touched
		{"http://a.com/100%?q=<v>", "http://a.com/100%?q=<v>"},
	}

	for _, tc := range testCases {
		if got := escapeTarget(tc.in); got != tc.want {
			t.Errorf("escapeTarget(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
