// SPDX-License-Identifier: MPL-2.0

package fspath_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/invowk/scriptkit/pkg/fspath"
	"github.com/invowk/scriptkit/pkg/types"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	got := fspath.Join(types.FilesystemPath(".venv"), types.FilesystemPath("bin"))
	want := types.FilesystemPath(filepath.Join(".venv", "bin"))
	if got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}

func TestJoinStr(t *testing.T) {
	t.Parallel()

	got := fspath.JoinStr(types.FilesystemPath("."), ".venv", "bin", "python")
	want := types.FilesystemPath(filepath.Join(".", ".venv", "bin", "python"))
	if got != want {
		t.Errorf("JoinStr() = %q, want %q", got, want)
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	got := fspath.Clean(types.FilesystemPath("a/./b/../c"))
	want := types.FilesystemPath(filepath.Clean("a/./b/../c"))
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestAbs(t *testing.T) {
	t.Parallel()

	got, err := fspath.Abs(types.FilesystemPath("relative"))
	if err != nil {
		t.Fatalf("Abs() error = %v", err)
	}
	if !filepath.IsAbs(string(got)) {
		t.Errorf("Abs() = %q, want absolute path", got)
	}
}

func TestExistenceChecks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "bar.txt")
	if err := os.WriteFile(file, []byte("Foobar!"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "nope")

	tests := []struct {
		name       string
		path       string
		wantExists bool
		wantDir    bool
		wantFile   bool
	}{
		{"directory", dir, true, true, false},
		{"regular file", file, true, false, true},
		{"missing", missing, false, false, false},
		{"beneath a regular file", filepath.Join(file, "child"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := types.FilesystemPath(tt.path)
			if got := fspath.Exists(p); got != tt.wantExists {
				t.Errorf("Exists(%q) = %v, want %v", p, got, tt.wantExists)
			}
			if got := fspath.IsDir(p); got != tt.wantDir {
				t.Errorf("IsDir(%q) = %v, want %v", p, got, tt.wantDir)
			}
			if got := fspath.IsFile(p); got != tt.wantFile {
				t.Errorf("IsFile(%q) = %v, want %v", p, got, tt.wantFile)
			}
		})
	}
}

func TestExistsSymlinkLoop(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a, b := filepath.Join(dir, "a"), filepath.Join(dir, "b")
	if err := os.Symlink(b, a); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	if err := os.Symlink(a, b); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	if fspath.Exists(types.FilesystemPath(a)) {
		t.Errorf("Exists(%q) = true for a symlink loop", a)
	}
}
