package wirehttp

import "testing"

func TestHexify(t *testing.T) {
	testCases := []struct {
		name   string
		in     string
		unsafe func(byte) bool
		want   string
	}{
		{"plain text untouched", "hello", UnsafeNonPrintable, "hello"},
		{"quote escaped", `say "hi"`, UnsafeNonPrintable, "say %22hi%22"},
		{"control bytes escaped", "a\x01b\nc", UnsafeNonPrintable, "a%01b%0Ac"},
		{"high bytes escaped", "caf\xc3\xa9", UnsafeNonPrintable, "caf%C3%A9"},
		{"percent always escaped", "50%", UnsafeNonPrintable, "50%25"},
		{"query space", "a b", UnsafeQueryByte, "a%20b"},
		{"query unreserved kept", "a-b_c.d~e", UnsafeQueryByte, "a-b_c.d~e"},
		{"query ampersand", "x&y=z", UnsafeQueryByte, "x%26y%3Dz"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Hexify(tc.in, tc.unsafe); got != tc.want {
				t.Errorf("Hexify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestUnhexify(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"basic", "a%20b", "a b"},
		{"lowercase hex", "a%2fb", "a/b"},
		{"literal percent kept", "100%", "100%"},
		{"bad hex kept", "%zz", "%zz"},
		{"truncated escape kept", "%2", "%2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Unhexify(tc.in); got != tc.want {
				t.Errorf("Unhexify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestHexifyRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"a b\tc",
		"100% \"quoted\"\r\n",
		"caf\xc3\xa9 \x00\x7f\xff",
		"name=a%20b&id=7",
	}
	patterns := map[string]func(byte) bool{
		"non-printable":       UnsafeNonPrintable,
		"query":               UnsafeQueryByte,
		"everything":          func(byte) bool { return true },
		"nothing-but-percent": func(byte) bool { return false },
	}

	for pname, pattern := range patterns {
		for _, in := range inputs {
			if got := Unhexify(Hexify(in, pattern)); got != in {
				t.Errorf("round trip with %s pattern: %q -> %q", pname, in, got)
			}
		}
	}
}
