// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := WriteFile(t, dir, filepath.Join("nested", "file.txt"), "content")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "content" {
		t.Errorf("content = %q, want %q", data, "content")
	}
}

func TestMustChdir(t *testing.T) {
	// Not parallel: changes the process working directory.
	original, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	restore := MustChdir(t, dir)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	resolved, _ := filepath.EvalSymlinks(dir)
	if wd != dir && wd != resolved {
		t.Errorf("Getwd() = %q, want %q", wd, dir)
	}

	restore()
	if wd, _ := os.Getwd(); wd != original {
		t.Errorf("Getwd() after restore = %q, want %q", wd, original)
	}
}
