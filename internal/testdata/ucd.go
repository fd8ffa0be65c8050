// Package testdata locates Unicode Character Database files for tests.
//
// The files are not part of the repository. Run
//
//	go run download.go
//
// in this directory to fetch them into directory ucd.
package testdata

import (
	"os"
	"path/filepath"
	"runtime"
)

// UCDFile opens the given UCD file. Callers have to close it.
func UCDFile(file string) (*os.File, error) {
	return os.Open(UCDPath(file))
}

// UCDPath returns the path of the given UCD file.
func UCDPath(file string) string {
	_, pkgfile, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgfile), "ucd", file)
}
