package utils

import (
	"os"
	"path"
	"testing"
)

func TestEnsureDirExists(t *testing.T) {
	dir := path.Join(t.TempDir(), "a", "b")
	if err := EnsureDirExists(dir); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Fatal("not a directory")
	}

	// Creating an existing directory is not an error.
	if err := EnsureDirExists(dir); err != nil {
		t.Fatal(err)
	}
}
