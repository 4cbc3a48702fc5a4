package hivemarkup

const (
	// MinBufferSize is the smallest capacity a working buffer grows to.
	MinBufferSize = 128
	// DefaultMaxOutput is the hard ceiling for a working buffer, in bytes.
	DefaultMaxOutput = 2 * 1024 * 1024
)

// buffer is an append-only byte accumulator with a hard size ceiling.
// Appends that would grow it past max are dropped whole; the buffer
// remembers that it dropped something so callers that rewrite already
// emitted bytes can back off.
type buffer struct {
	data    []byte
	max     int
	dropped bool
}

func (b *buffer) reset(max int) {
	b.data = b.data[:0]
	b.max = max
	b.dropped = false
}

// reserve grows the buffer so that n more bytes fit without further growth.
// It reports false when that would exceed the ceiling, even if a pooled
// backing array left over from an earlier render has room.
func (b *buffer) reserve(n int) bool {
	need := len(b.data) + n
	if need > b.max {
		return false
	}
	if need <= cap(b.data) {
		return true
	}
	want := MinBufferSize + need + need>>1
	if want > b.max {
		want = b.max
	}
	grown := make([]byte, len(b.data), want)
	copy(grown, b.data)
	b.data = grown
	return true
}

func (b *buffer) append(p []byte) {
	if !b.reserve(len(p)) {
		b.dropped = true
		return
	}
	b.data = append(b.data, p...)
}

func (b *buffer) appendString(s string) {
	if !b.reserve(len(s)) {
		b.dropped = true
		return
	}
	b.data = append(b.data, s...)
}

func (b *buffer) appendByte(c byte) {
	if !b.reserve(1) {
		b.dropped = true
		return
	}
	b.data = append(b.data, c)
}

func (b *buffer) len() int {
	return len(b.data)
}

// truncate discards all but the first n bytes.
func (b *buffer) truncate(n int) {
	if n < 0 || n > len(b.data) {
		return
	}
	b.data = b.data[:n]
}

func (b *buffer) bytes() []byte {
	return b.data
}
