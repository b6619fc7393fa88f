// Package testutil contains helpers shared by package tests
package testutil

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

// Golden is implemented by test cases whose output is checked against a
// file in testdata.
type Golden interface {
	Output() (out []byte, name string)
}

// CompareGoldenFile verifies that the output of an operation matches the
// contents of testdata/<name>.golden. Run tests with -update to rewrite the
// fixtures.
func CompareGoldenFile(t *testing.T, tc Golden) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: normalise CRLF line endings so fixtures can be shared
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	out, name := tc.Output()

	g.Assert(t, name, out)
}

// CopyFile copies src to dst, creating or truncating dst.
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}
