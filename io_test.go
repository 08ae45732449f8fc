package crunchbang

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDataDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("data directory follows LOCALAPPDATA on windows")
	}
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if want := filepath.Join(base, "crunchbang"); dir != want {
		t.Errorf("got %q, want %q", dir, want)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Errorf("data directory not created: %v", err)
	}
	cfg := DefaultConfig()
	path, err := cfg.savePath("save")
	if err != nil || path != filepath.Join(dir, "save") {
		t.Errorf("savePath = %q, %v", path, err)
	}
}
