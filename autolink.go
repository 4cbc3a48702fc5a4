package hivemarkup

import (
	"bytes"
	"strings"
)

const linkTrailingPunct = ":;!?,.'\"&"

var (
	schemeHTTP  = []byte("http:")
	schemeHTTPS = []byte("https:")
)

// autolink fires on the first '/' of "http://" or "https://". By then the
// scheme has already been written as plain text, so it is taken back out
// of the buffer before the whole URL is written as a link. That is only
// done while the scheme is part of the literal run written by the current
// scan and the buffer has not dropped anything.
func (c *compiler) autolink(start, end int) int {
	t := c.text
	if start < len(schemeHTTP) || start+2 >= end || t[start-1] != ':' || t[start+1] != '/' {
		return 0
	}
	var from int
	switch {
	case start >= len(schemeHTTPS) && bytes.Equal(t[start-len(schemeHTTPS):start], schemeHTTPS):
		from = start - len(schemeHTTPS)
	case bytes.Equal(t[start-len(schemeHTTP):start], schemeHTTP):
		from = start - len(schemeHTTP)
	default:
		return 0
	}
	scheme := start - from
	if from < c.litFrom || c.out.dropped || c.out.len()-c.litOut < scheme {
		return 0
	}

	linkEnd := start + 2
	for linkEnd < end && !isSpace(t[linkEnd]) {
		linkEnd++
	}
	for linkEnd > start && strings.IndexByte(linkTrailingPunct, t[linkEnd-1]) >= 0 {
		linkEnd--
	}
	linkEnd = balanceParens(t, start, linkEnd)

	c.out.truncate(c.out.len() - scheme)
	c.out.appendString(`<a href="`)
	c.escape(from, linkEnd)
	c.out.appendString(`">`)
	c.escape(from, linkEnd)
	c.out.appendString("</a>")
	return linkEnd - start
}

// balanceParens drops trailing ')' bytes from t[start:end] and keeps one of
// them when an unescaped '(' occurs inside the URL, so "(http://a)" links
// "http://a" while "http://a(b))" links "http://a(b)".
func balanceParens(t []byte, start, end int) int {
	i := end
	for i > start && t[i-1] == ')' {
		i--
	}
	if i == end {
		return end
	}
	trimmed := i
	for ; i > start; i-- {
		if t[i] == '(' && t[i-1] != '\\' {
			return trimmed + 1
		}
	}
	return trimmed
}
