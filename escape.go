package hivemarkup

import "math"

// htmlEscapes maps a byte to its entity, or "" when it is copied verbatim.
var htmlEscapes = func() [256]string {
	var t [256]string
	t['"'] = "&quot;"
	t['&'] = "&amp;"
	t['\''] = "&#39;"
	t['/'] = "&#47;"
	t['<'] = "&lt;"
	t['>'] = "&gt;"
	for c := 0; c < 0x20; c++ {
		if c == '\t' || c == '\n' {
			continue
		}
		t[c] = "&#xFFFD;"
	}
	t[0x7f] = "&#xFFFD;"
	return t
}()

// escapeHTML writes src to out with unsafe bytes replaced by entities.
// Runs of safe bytes are copied in one append. It returns len(src).
func escapeHTML(out *buffer, src []byte) int {
	start := 0
	for i := 0; i < len(src); i++ {
		esc := htmlEscapes[src[i]]
		if esc == "" {
			continue
		}
		if i > start {
			out.append(src[start:i])
		}
		out.appendString(esc)
		start = i + 1
	}
	if start < len(src) {
		out.append(src[start:])
	}
	return len(src)
}

// EscapeHTML returns src escaped the same way literal post text is escaped.
func EscapeHTML(src []byte) []byte {
	var out buffer
	out.reset(math.MaxInt)
	escapeHTML(&out, src)
	return out.bytes()
}
