//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

const ucdBase = "https://www.unicode.org/Public/13.0.0/ucd/"

// files used by the tests of ucdparse
var files = []string{"LineBreak.txt", "EastAsianWidth.txt", "Scripts.txt"}

func main() {
	for _, file := range files {
		if err := download(ucdBase+file, filepath.Join("ucd", file)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to download %s: %v\n", file, err)
			os.Exit(1)
		}
	}
}

func download(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
