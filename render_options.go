package hivemarkup

// DefaultMaxDepth bounds how deeply markup may nest before inner
// constructs are left as literal text.
const DefaultMaxDepth = 32

// RenderOption configures rendering limits. There are no options to turn
// individual constructs on or off.
type RenderOption func(*renderConfig)

type renderConfig struct {
	maxOutput int
	maxDepth  int
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{
		maxOutput: DefaultMaxOutput,
		maxDepth:  DefaultMaxDepth,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithMaxOutput sets the ceiling, in bytes, of each working buffer. Output
// that would exceed it is silently dropped. A limit below MinBufferSize
// makes Render fail with ErrNoBuffer.
func WithMaxOutput(n int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.maxOutput = n
	}
}

// WithMaxDepth sets the nesting bound for emphasis, quotes and spoilers.
func WithMaxDepth(n int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.maxDepth = n
	}
}
