package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/hivemarkup"
)

// gen-golden renders every testdata/*.txt post into a sibling .golden file.
func main() {
	root := "testdata"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".txt") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no posts found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		doc, err := hivemarkup.Render(src, hivemarkup.UTF8)
		if err != nil {
			fatalf("render %s: %v", path, err)
		}
		out := strings.TrimSuffix(path, ".txt") + ".golden"
		if err := os.WriteFile(out, doc.HTML, 0o644); err != nil {
			fatalf("write %s: %v", out, err)
		}
		fmt.Println("wrote", out)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
