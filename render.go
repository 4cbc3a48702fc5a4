package hivemarkup

import (
	"bytes"
	"errors"
	"sync"
)

// ErrNoBuffer reports that a render could not start because its working
// buffers could not be created. It is distinct from an empty result.
var ErrNoBuffer = errors.New("hivemarkup: cannot allocate working buffer")

// Encoding tags the character encoding of a post. Render carries it from
// input to output without interpreting it.
type Encoding string

// UTF8 is the encoding tag used by RenderString.
const UTF8 Encoding = "utf-8"

// maxPooledBuffer caps the capacity a buffer may keep when returned to the pool.
const maxPooledBuffer = 64 * 1024

// Document is a rendered post.
type Document struct {
	HTML     []byte
	Encoding Encoding
}

// String returns the HTML as a string.
func (d Document) String() string {
	return string(d.HTML)
}

type renderState struct {
	pre      buffer
	out      buffer
	compiler compiler
}

var statePool = sync.Pool{
	New: func() any {
		return &renderState{}
	},
}

// Render compiles src to an HTML fragment. Text outside recognized markup
// is always HTML-escaped. Output beyond the configured maximum is dropped
// rather than failing the render; ErrNoBuffer is the only error.
func Render(src []byte, enc Encoding, opts ...RenderOption) (Document, error) {
	cfg := newRenderConfig(opts)
	if cfg.maxOutput < MinBufferSize {
		return Document{}, ErrNoBuffer
	}
	if len(src) == 0 {
		return Document{HTML: []byte{}, Encoding: enc}, nil
	}
	st := statePool.Get().(*renderState)
	st.pre.reset(cfg.maxOutput)
	st.out.reset(cfg.maxOutput)
	st.pre.reserve(len(src))
	st.out.reserve(len(src))

	preprocess(&st.pre, src)
	st.compiler.reset(st.pre.bytes(), &st.out, cfg.maxDepth)
	st.compiler.compile(0, st.pre.len())

	doc := Document{
		HTML:     bytes.Clone(st.out.bytes()),
		Encoding: enc,
	}
	st.release()
	return doc, nil
}

func (st *renderState) release() {
	st.compiler.reset(nil, nil, 0)
	if cap(st.pre.data) > maxPooledBuffer {
		st.pre.data = nil
	}
	if cap(st.out.data) > maxPooledBuffer {
		st.out.data = nil
	}
	statePool.Put(st)
}

// RenderString renders a UTF-8 post and returns the HTML. It returns ""
// when the render cannot start.
func RenderString(src string, opts ...RenderOption) string {
	doc, err := Render([]byte(src), UTF8, opts...)
	if err != nil {
		return ""
	}
	return doc.String()
}
