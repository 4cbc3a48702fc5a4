package hivemarkup

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

type sample struct {
	name   string
	post   []byte
	golden []byte
}

func readSamples(tb testing.TB) []sample {
	tb.Helper()
	paths, err := filepath.Glob(filepath.Join("testdata", "*.txt"))
	if err != nil {
		tb.Fatalf("glob testdata: %v", err)
	}
	if len(paths) == 0 {
		tb.Fatalf("no posts under testdata")
	}
	sort.Strings(paths)
	samples := make([]sample, 0, len(paths))
	for _, path := range paths {
		post, err := os.ReadFile(path)
		if err != nil {
			tb.Fatalf("read %s: %v", path, err)
		}
		golden, err := os.ReadFile(strings.TrimSuffix(path, ".txt") + ".golden")
		if err != nil {
			tb.Fatalf("read golden for %s: %v", path, err)
		}
		samples = append(samples, sample{
			name:   strings.TrimSuffix(filepath.Base(path), ".txt"),
			post:   post,
			golden: golden,
		})
	}
	return samples
}
