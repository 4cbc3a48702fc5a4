package hivemarkup

const maxQuoteLinkDigits = 10

// escapeSequence handles a backslash in front of a markup byte.
func (c *compiler) escapeSequence(start, end int) int {
	if start+1 >= end {
		return 0
	}
	switch c.text[start+1] {
	case '*', '`', '$', '~':
		c.escape(start+1, start+2)
		return 2
	}
	return 0
}

// emphasis handles *text*. Emphasis never spans a line.
func (c *compiler) emphasis(start, end int) int {
	t := c.text
	if start > 0 && isAlnum(t[start-1]) {
		return 0
	}
	run := start + 1
	for run < end && t[run] == '*' {
		run++
	}
	if run-start > 1 {
		return c.escape(start, run)
	}
	if run < end && isSpace(t[run]) {
		return 0
	}
	closing := run
	for closing < end && t[closing] != '\n' {
		if t[closing] == '*' &&
			!isSpace(t[closing-1]) &&
			t[closing-1] != '\\' &&
			(closing+1 >= end || !isAlnum(t[closing+1])) {
			break
		}
		closing++
	}
	if closing >= end || t[closing] == '\n' {
		return 0
	}
	if !c.canNest() {
		return 0
	}
	c.out.appendString("<em>")
	c.compile(start+1, closing)
	c.out.appendString("</em>")
	return closing - start + 1
}

// quoteLink handles >>123, a reference to another post.
func (c *compiler) quoteLink(start, end int) int {
	t := c.text
	if start > 0 && isAlnum(t[start-1]) {
		return 0
	}
	if start+1 >= end || t[start+1] != '>' {
		return 0
	}
	from := start + 2
	to := from
	for to < end && isDigit(t[to]) && to-from < maxQuoteLinkDigits {
		to++
	}
	if to == from || (to < end && isAlpha(t[to])) {
		return 0
	}
	c.out.appendString(`<a class="ql" href="#`)
	c.escape(from, to)
	c.out.appendString(`">&gt;&gt;`)
	c.escape(from, to)
	c.out.appendString("</a>")
	return to - start
}

// quote handles a line starting with '>'. Leading '>' bytes become glyphs,
// except that the last two of a longer run stay in the body where they may
// form a quote-link.
func (c *compiler) quote(start, end int) int {
	t := c.text
	if start > 0 && t[start-1] != '\n' {
		return 0
	}
	if !c.canNest() {
		return 0
	}
	lineEnd := start
	for lineEnd < end && t[lineEnd] != '\n' {
		lineEnd++
	}
	body := start + 1
	for body+2 < lineEnd && t[body] == '>' && t[body+1] == '>' && t[body+2] == '>' {
		body++
	}
	c.out.appendString(`<span class="q">`)
	for i := start; i < body; i++ {
		c.out.appendString("&gt;")
	}
	c.compile(body, lineEnd)
	c.out.appendString("</span>")
	return lineEnd - start
}

// lineBreak emits one <br> for a single newline and two for any longer run.
func (c *compiler) lineBreak(start, end int) int {
	c.out.appendString("<br>")
	n := 1
	for start+n < end && c.text[start+n] == '\n' {
		n++
	}
	if n > 1 {
		c.out.appendString("<br>")
	}
	return n
}

// spoiler handles $$text$$. The body is compiled as inline content with the
// fragile flag set so it cannot open a fenced block.
func (c *compiler) spoiler(start, end int) int {
	t := c.text
	if start > 0 && isAlnum(t[start-1]) {
		return 0
	}
	run := start + 1
	for run < end && t[run] == '$' {
		run++
	}
	if run-start != 2 {
		return c.escape(start, run)
	}
	body := run
	for body < end && t[body] == '\n' {
		body++
	}
	if body >= end {
		return 0
	}
	closing := body
	for ; closing+1 < end; closing++ {
		if t[closing] == '$' && t[closing+1] == '$' &&
			(closing+2 >= end || !isAlnum(t[closing+2])) {
			break
		}
	}
	if closing+1 >= end {
		return 0
	}
	bodyEnd := trimNewlines(t, body, closing)
	if bodyEnd <= body || !c.canNest() {
		return 0
	}
	c.fragile = true
	c.out.appendString(`<span class="s">`)
	c.compile(body, bodyEnd)
	c.out.appendString("</span>")
	c.fragile = false
	return closing - start + 2
}

// trimNewlines returns end moved back over trailing newlines, not past start.
func trimNewlines(t []byte, start, end int) int {
	for end > start && t[end-1] == '\n' {
		end--
	}
	return end
}
