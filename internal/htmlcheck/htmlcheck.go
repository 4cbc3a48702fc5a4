// Package htmlcheck verifies that an HTML fragment only uses the tags and
// attributes the markup compiler emits.
package htmlcheck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Violation describes the first token that broke the allowlist.
type Violation struct {
	Offset int
	Token  string
	Reason string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("htmlcheck: offset %d: %s: %q", v.Offset, v.Reason, v.Token)
}

// Check tokenizes fragment and reports the first violation, if any:
// a tag or attribute outside the allowlist, an unbalanced end tag, or text
// carrying raw '<', '>', '"' or '\'' bytes.
func Check(fragment []byte) error {
	z := html.NewTokenizer(bytes.NewReader(fragment))
	var open []string
	offset := 0
	for {
		tt := z.Next()
		raw := string(z.Raw())
		fail := func(reason string) error {
			return &Violation{Offset: offset, Token: raw, Reason: reason}
		}
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return fail(err.Error())
			}
			if len(open) > 0 {
				return &Violation{Offset: offset, Token: open[len(open)-1], Reason: "unclosed tag"}
			}
			return nil
		case html.TextToken:
			if strings.ContainsAny(raw, "<>\"'") {
				return fail("unescaped text")
			}
		case html.StartTagToken:
			tok := z.Token()
			if reason := checkStartTag(tok); reason != "" {
				return fail(reason)
			}
			if tok.Data != "br" {
				open = append(open, tok.Data)
			}
		case html.EndTagToken:
			tok := z.Token()
			if len(open) == 0 || open[len(open)-1] != tok.Data {
				return fail("unbalanced end tag")
			}
			open = open[:len(open)-1]
		default:
			return fail("unexpected " + tt.String())
		}
		offset += len(raw)
	}
}

func checkStartTag(tok html.Token) string {
	attrs := make(map[string]string, len(tok.Attr))
	for _, a := range tok.Attr {
		if a.Namespace != "" {
			return "namespaced attribute"
		}
		if _, dup := attrs[a.Key]; dup {
			return "duplicate attribute"
		}
		attrs[a.Key] = a.Val
	}
	switch tok.Data {
	case "em", "br":
		if len(attrs) == 0 {
			return ""
		}
	case "span":
		if len(attrs) == 1 && (attrs["class"] == "q" || attrs["class"] == "s") {
			return ""
		}
	case "pre":
		if len(attrs) == 1 && (attrs["class"] == "code" || attrs["class"] == "aa") {
			return ""
		}
	case "code":
		if len(attrs) == 1 && attrs["class"] == "prettyprint" {
			return ""
		}
	case "a":
		return checkAnchor(attrs)
	default:
		return "tag not allowed"
	}
	return "attributes not allowed"
}

func checkAnchor(attrs map[string]string) string {
	href, ok := attrs["href"]
	if !ok {
		return "anchor without href"
	}
	switch len(attrs) {
	case 1:
		if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
			return ""
		}
		return "href scheme not allowed"
	case 2:
		if attrs["class"] == "ql" && isPostRef(href) {
			return ""
		}
	}
	return "attributes not allowed"
}

func isPostRef(href string) bool {
	if len(href) < 2 || href[0] != '#' {
		return false
	}
	for i := 1; i < len(href); i++ {
		if href[i] < '0' || href[i] > '9' {
			return false
		}
	}
	return true
}
