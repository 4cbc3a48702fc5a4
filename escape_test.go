package hivemarkup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`<a href="x">'&'</a>`, "&lt;a href=&quot;x&quot;&gt;&#39;&amp;&#39;&lt;&#47;a&gt;"},
		{"tab\tand\nnewline", "tab\tand\nnewline"},
		{"nul\x00del\x7f", "nul&#xFFFD;del&#xFFFD;"},
		{"caf\xc3\xa9", "caf\xc3\xa9"},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, string(EscapeHTML([]byte(tc.in)))); diff != "" {
			t.Errorf("EscapeHTML(%q) diff (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestEscapeTableCoversOnlyUnsafeBytes(t *testing.T) {
	for c := 0; c < 256; c++ {
		esc := htmlEscapes[c]
		unsafe := c < 0x20 && c != '\t' && c != '\n' || c == 0x7f
		switch byte(c) {
		case '"', '&', '\'', '/', '<', '>':
			unsafe = true
		}
		if unsafe != (esc != "") {
			t.Fatalf("byte %#x: escape %q", c, esc)
		}
	}
}

func TestEscapeHTMLReturnsConsumed(t *testing.T) {
	var out buffer
	out.reset(DefaultMaxOutput)
	if n := escapeHTML(&out, []byte("a<b")); n != 3 {
		t.Fatalf("expected 3, got %d", n)
	}
	if got := string(out.bytes()); got != "a&lt;b" {
		t.Fatalf("got %q", got)
	}
}
