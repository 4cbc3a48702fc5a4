package hivemarkup

import (
	"testing"

	"pkt.systems/hivemarkup/internal/htmlcheck"
)

func FuzzRender(f *testing.F) {
	seeds := []string{
		"",
		"*em*",
		">>1\n>quote",
		"$$\n```\ncode\n```\n$$",
		"~~~\naa\n~~~",
		"(http://abc)))",
		`https://x/"onmouseover="`,
		"\\*\\`\\$\\~\\",
		"<script>alert(1)</script>",
		"\x00\x01\t\x7f\xff",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}
	f.Fuzz(func(t *testing.T, post []byte) {
		const max = 4096
		doc, err := Render(post, UTF8, WithMaxOutput(max))
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if len(doc.HTML) > max {
			t.Fatalf("output %d bytes exceeds limit", len(doc.HTML))
		}
		// Larger posts may hit the default limit and lose closing tags.
		if len(post) > 64*1024 {
			return
		}
		full, err := Render(post, UTF8)
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if err := htmlcheck.Check(full.HTML); err != nil {
			t.Fatalf("input %q: %v\noutput %q", post, err, full.HTML)
		}
	})
}
