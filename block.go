package hivemarkup

const fenceLen = 3

type fence struct {
	char  byte
	open  string
	close string
}

var (
	codeFence = fence{
		char:  '`',
		open:  `<pre class="code"><code class="prettyprint">`,
		close: "</code></pre>",
	}
	artFence = fence{
		char:  '~',
		open:  `<pre class="aa">`,
		close: "</pre>",
	}
)

// fenced handles a block delimited by lines of exactly three fence bytes.
// The body is escaped verbatim; no inline markup applies inside it.
func (c *compiler) fenced(start, end int, f fence) int {
	if c.fragile {
		return 0
	}
	t := c.text
	if start > 0 && t[start-1] != '\n' {
		return 0
	}
	if start+fenceLen-1 >= end || t[start+1] != f.char || t[start+2] != f.char {
		return 0
	}
	if start+fenceLen < end && t[start+fenceLen] == f.char {
		return 0
	}
	pos := start + fenceLen
	for pos < end && t[pos] == '\n' {
		pos++
	}
	if pos >= end {
		return 0
	}
	body := pos
	closing := f.closingAt(t, body, end)
	if closing < 0 {
		return 0
	}
	bodyEnd := trimNewlines(t, body, closing-fenceLen+1)
	if bodyEnd <= body {
		return 0
	}
	c.out.appendString(f.open)
	c.escape(body, bodyEnd)
	c.out.appendString(f.close)
	// Swallow the newline ending the closing fence line.
	if closing+1 < end {
		closing++
	}
	return closing - start + 1
}

// closingAt returns the offset of the last byte of the closing fence, or -1.
// A fence byte preceded by a backslash resets the run.
func (f fence) closingAt(t []byte, start, end int) int {
	run := 0
	for pos := start; pos < end; pos++ {
		if t[pos] != f.char || t[pos-1] == '\\' {
			run = 0
			continue
		}
		run++
		if run == fenceLen && t[pos-fenceLen] == '\n' && (pos+1 >= end || t[pos+1] == '\n') {
			return pos
		}
	}
	return -1
}
