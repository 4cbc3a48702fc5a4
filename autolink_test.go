package hivemarkup

import "testing"

func TestAutolink(t *testing.T) {
	runRenderCases(t, []renderCase{
		{"after word", "ahttp://x", `a<a href="http:&#47;&#47;x">http:&#47;&#47;x</a>`},
		{"trailing period", "http://a.b/c.", `<a href="http:&#47;&#47;a.b&#47;c">http:&#47;&#47;a.b&#47;c</a>.`},
		{"paren before punctuation", "http://a.b/c,)", `<a href="http:&#47;&#47;a.b&#47;c,">http:&#47;&#47;a.b&#47;c,</a>)`},
		{"balanced parens", "http://x/(a)b)", `<a href="http:&#47;&#47;x&#47;(a)b)">http:&#47;&#47;x&#47;(a)b)</a>`},
		{"escaped open paren", `http://x/\(a))`, `<a href="http:&#47;&#47;x&#47;\(a">http:&#47;&#47;x&#47;\(a</a>))`},
		{"inside emphasis", "*http://x.y*", `<em><a href="http:&#47;&#47;x.y">http:&#47;&#47;x.y</a></em>`},
		{"inside quote", ">http://x.y", `<span class="q">&gt;<a href="http:&#47;&#47;x.y">http:&#47;&#47;x.y</a></span>`},
		{
			"attribute breakout",
			`https://x/"onmouseover="`,
			`<a href="https:&#47;&#47;x&#47;&quot;onmouseover=">https:&#47;&#47;x&#47;&quot;onmouseover=</a>&quot;`,
		},
		{
			"query string",
			"http://a.b/?q=1&r=2",
			`<a href="http:&#47;&#47;a.b&#47;?q=1&amp;r=2">http:&#47;&#47;a.b&#47;?q=1&amp;r=2</a>`,
		},
		{"shortest", "http://a", `<a href="http:&#47;&#47;a">http:&#47;&#47;a</a>`},
		{"nothing after scheme", "http://", "http:&#47;&#47;"},
		{"unknown scheme", "httpx://a", "httpx:&#47;&#47;a"},
		{"ftp", "ftp://a", "ftp:&#47;&#47;a"},
		{"single slash", "http:/a", "http:&#47;a"},
	})
}

func TestAutolinkNeedsSchemeInLiteralRun(t *testing.T) {
	text := []byte("http://x")
	var out buffer
	out.reset(DefaultMaxOutput)
	var c compiler
	c.reset(text, &out, DefaultMaxDepth)
	c.escape(0, 5)

	c.litFrom = 2
	if n := c.autolink(5, len(text)); n != 0 {
		t.Fatalf("expected decline when scheme precedes the literal run, consumed %d", n)
	}

	c.litFrom = 0
	out.truncate(0)
	if n := c.autolink(5, len(text)); n != 0 {
		t.Fatalf("expected decline when the scheme was not written, consumed %d", n)
	}

	c.escape(0, 5)
	out.dropped = true
	if n := c.autolink(5, len(text)); n != 0 {
		t.Fatalf("expected decline after a dropped append, consumed %d", n)
	}

	out.dropped = false
	if n := c.autolink(5, len(text)); n != 3 {
		t.Fatalf("expected 3 bytes consumed, got %d", n)
	}
	want := `<a href="http:&#47;&#47;x">http:&#47;&#47;x</a>`
	if got := string(out.bytes()); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestBalanceParens(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"http://a", "http://a"},
		{"http://a)", "http://a"},
		{"http://a(b))", "http://a(b)"},
		{"http://a(b", "http://a(b"},
		{`http://a\(b)`, `http://a\(b`},
	}
	for _, tc := range tests {
		t.Run(tc.url, func(t *testing.T) {
			text := []byte(tc.url)
			end := balanceParens(text, 5, len(text))
			if got := string(text[:end]); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
