package hivemarkup

type trigger uint8

const (
	triggerNone trigger = iota
	triggerEmphasis
	triggerQuote
	triggerLineBreak
	triggerCode
	triggerSpoiler
	triggerEscape
	triggerArt
	triggerAutolink
)

// triggers maps every byte to the construct it may start. It is built once
// and never written afterwards, so concurrent renders share it freely.
var triggers = func() [256]trigger {
	var t [256]trigger
	t['*'] = triggerEmphasis
	t['>'] = triggerQuote
	t['\n'] = triggerLineBreak
	t['`'] = triggerCode
	t['$'] = triggerSpoiler
	t['\\'] = triggerEscape
	t['~'] = triggerArt
	t['/'] = triggerAutolink
	return t
}()

// compiler holds the state of a single render. Handlers read text through
// [start, end) offsets and never copy it.
type compiler struct {
	text     []byte
	out      *buffer
	fragile  bool
	depth    int
	maxDepth int

	// litFrom and litOut describe the literal run currently being written:
	// text[litFrom:pos] went through the escaper and nothing else was
	// written to out since out held litOut bytes.
	litFrom int
	litOut  int
}

func (c *compiler) reset(text []byte, out *buffer, maxDepth int) {
	c.text = text
	c.out = out
	c.fragile = false
	c.depth = 0
	c.maxDepth = maxDepth
	c.litFrom = 0
	c.litOut = 0
}

func (c *compiler) escape(start, end int) int {
	return escapeHTML(c.out, c.text[start:end])
}

func (c *compiler) mark(pos int) {
	c.litFrom = pos
	c.litOut = c.out.len()
}

// canNest reports whether a handler may compile a nested span.
func (c *compiler) canNest() bool {
	return c.depth < c.maxDepth
}

// compile scans text[start:end], escaping plain runs and handing every
// trigger byte to its handler. A handler returns the number of bytes it
// consumed, or 0 to decline; a declined trigger is written as a literal
// byte. Either way the scan advances, so compile always terminates.
func (c *compiler) compile(start, end int) int {
	c.depth++
	pos := start
	c.mark(pos)
	for pos < end {
		from := pos
		for pos < end && triggers[c.text[pos]] == triggerNone {
			pos++
		}
		if pos > from {
			c.escape(from, pos)
		}
		if pos >= end {
			break
		}
		if n := c.dispatch(triggers[c.text[pos]], pos, end); n > 0 {
			pos += n
			c.mark(pos)
		} else {
			c.escape(pos, pos+1)
			pos++
		}
	}
	c.depth--
	return end - start
}

func (c *compiler) dispatch(t trigger, start, end int) int {
	switch t {
	case triggerEmphasis:
		return c.emphasis(start, end)
	case triggerQuote:
		if n := c.quoteLink(start, end); n > 0 {
			return n
		}
		return c.quote(start, end)
	case triggerLineBreak:
		return c.lineBreak(start, end)
	case triggerCode:
		return c.fenced(start, end, codeFence)
	case triggerSpoiler:
		return c.spoiler(start, end)
	case triggerEscape:
		return c.escapeSequence(start, end)
	case triggerArt:
		return c.fenced(start, end, artFence)
	case triggerAutolink:
		return c.autolink(start, end)
	}
	return 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
