package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/hivemarkup"
	"pkt.systems/hivemarkup/internal/htmlcheck"
	"pkt.systems/pslog"
	"pkt.systems/version"
)

const (
	defaultWidth    = 80
	defaultEncoding = "utf-8"
)

const usageText = `Renders forum post markup to an HTML fragment. Inputs may be files, file:// URLs or http(s):// URLs; several inputs are rendered as one post. If no input is provided, the post is read from stdin.`

func init() {
	version.SetDefaultModule("pkt.systems/hivemarkup")
}

// logger is the subset of the pslog API the command uses.
type logger interface {
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

type renderFlags struct {
	encoding  string
	strict    bool
	verify    bool
	maxOutput int
	maxDepth  int
	verbose   bool
}

func main() {
	var (
		cfg         renderFlags
		outPath     string
		showVersion bool
	)

	flags := pflag.NewFlagSet("hivemarkup", pflag.ExitOnError)
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVarP(&cfg.encoding, "encoding", "e", defaultEncoding, "Encoding tag of the input")
	flags.BoolVar(&cfg.strict, "strict", false, "Reject invalid or binary input before rendering")
	flags.BoolVar(&cfg.verify, "verify", false, "Check the rendered HTML against the tag allowlist")
	flags.IntVar(&cfg.maxOutput, "max-output", hivemarkup.DefaultMaxOutput, "Maximum size of the rendered HTML in bytes")
	flags.IntVar(&cfg.maxDepth, "max-depth", hivemarkup.DefaultMaxDepth, "Maximum markup nesting depth")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "Log render statistics to stderr")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: hivemarkup [flags] [inputs...]\n\n")
		fmt.Fprintln(os.Stderr, wordwrap.String(usageText, terminalWidth(defaultWidth)))
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}

	log := logger(pslog.New(os.Stderr).With("encoding", cfg.encoding))

	args := flags.Args()
	if len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		flags.Usage()
		os.Exit(2)
	}
	reader, err := openInputs(args)
	if err != nil {
		log.Error("open input", "err", err)
		os.Exit(1)
	}
	defer func() { _ = reader.Close() }()

	writer, err := createOutput(outPath)
	if err != nil {
		log.Error("open output", "path", outPath, "err", err)
		os.Exit(1)
	}
	defer func() { _ = writer.Close() }()

	if err := renderInput(reader, writer, cfg, log); err != nil {
		log.Error("render", "err", err)
		os.Exit(1)
	}
}

// renderInput reads the whole post from r and writes its HTML to w.
func renderInput(r io.Reader, w io.Writer, cfg renderFlags, log logger) error {
	enc, err := hivemarkup.CanonicalEncoding(hivemarkup.Encoding(cfg.encoding))
	if err != nil {
		return err
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if cfg.strict {
		if err := hivemarkup.ValidateInput(src, enc); err != nil {
			return fmt.Errorf("validate input: %w", err)
		}
	}
	doc, err := hivemarkup.Render(src, enc,
		hivemarkup.WithMaxOutput(cfg.maxOutput),
		hivemarkup.WithMaxDepth(cfg.maxDepth),
	)
	if err != nil {
		return err
	}
	if cfg.verify {
		if err := htmlcheck.Check(doc.HTML); err != nil {
			return err
		}
	}
	if cfg.verbose {
		log.Info("rendered", "encoding", string(doc.Encoding), "in", len(src), "out", len(doc.HTML))
		if len(doc.HTML) >= cfg.maxOutput-hivemarkup.MinBufferSize {
			log.Warn("output near limit, may be truncated", "max", cfg.maxOutput)
		}
	}
	if _, err := w.Write(doc.HTML); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func terminalWidth(fallback int) int {
	fd := int(os.Stderr.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

// lazyInput opens its source on first read and closes it at EOF, so that
// many inputs never hold more than one file or connection open.
type lazyInput struct {
	name   string
	open   func() (io.ReadCloser, error)
	cur    io.ReadCloser
	done   bool
	closed bool
}

func (l *lazyInput) Read(p []byte) (int, error) {
	if l.done {
		return 0, io.EOF
	}
	if l.cur == nil {
		rc, err := l.open()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", l.name, err)
		}
		l.cur = rc
	}
	n, err := l.cur.Read(p)
	if err == io.EOF {
		l.done = true
		_ = l.Close()
	}
	return n, err
}

func (l *lazyInput) Close() error {
	if l.cur == nil || l.closed {
		return nil
	}
	l.closed = true
	return l.cur.Close()
}

type inputs struct {
	io.Reader
	sources []*lazyInput
}

func (in *inputs) Close() error {
	var first error
	for _, src := range in.sources {
		if err := src.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func openInputs(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	in := &inputs{sources: make([]*lazyInput, 0, len(args))}
	readers := make([]io.Reader, 0, len(args))
	for _, raw := range args {
		src, err := makeInput(raw)
		if err != nil {
			return nil, err
		}
		in.sources = append(in.sources, src)
		readers = append(readers, src)
	}
	in.Reader = io.MultiReader(readers...)
	return in, nil
}

// makeInput maps one argument to a lazily opened source. "http://" and
// "https://" arguments are fetched, "file://" arguments and everything
// else are local paths.
func makeInput(raw string) (*lazyInput, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty input argument")
	}
	in := &lazyInput{name: raw}
	scheme, rest, found := strings.Cut(raw, "://")
	switch {
	case found && (strings.EqualFold(scheme, "http") || strings.EqualFold(scheme, "https")):
		in.open = func() (io.ReadCloser, error) { return openURL(raw) }
	case found && strings.EqualFold(scheme, "file"):
		path, err := url.PathUnescape(rest)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", raw, err)
		}
		in.open = func() (io.ReadCloser, error) { return os.Open(expandHome(path)) }
	default:
		in.open = func() (io.ReadCloser, error) { return os.Open(expandHome(raw)) }
	}
	return in, nil
}

func openURL(raw string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("status %s", resp.Status)
	}
	return resp.Body, nil
}

type stdout struct{ io.Writer }

func (stdout) Close() error { return nil }

// createOutput opens the HTML destination. An empty path is stdout, which
// is never closed.
func createOutput(path string) (io.WriteCloser, error) {
	if strings.TrimSpace(path) == "" {
		return stdout{os.Stdout}, nil
	}
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && rest[0] != '/' && rest[0] != filepath.Separator) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
