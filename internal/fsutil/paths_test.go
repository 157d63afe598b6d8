package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()

	free := filepath.Join(dir, "Game.nes")
	if got := UniquePath(free); got != free {
		t.Errorf("UniquePath on free path = %q, want %q", got, free)
	}

	if err := os.WriteFile(free, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "Game_1.nes")
	if got := UniquePath(free); got != want {
		t.Errorf("first collision = %q, want %q", got, want)
	}

	if err := os.WriteFile(want, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	want2 := filepath.Join(dir, "Game_2.nes")
	if got := UniquePath(free); got != want2 {
		t.Errorf("second collision = %q, want %q", got, want2)
	}
}

func TestUniquePathDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "Game (USA)")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}

	got := UniquePath(sub)
	// The directory name has no extension to preserve; the suffix lands
	// after the closing paren.
	if got == sub {
		t.Fatalf("UniquePath returned the occupied path %q", got)
	}
	if filepath.Dir(got) != dir {
		t.Errorf("unique path left the parent directory: %q", got)
	}
}

func TestWithinRoot(t *testing.T) {
	tests := []struct {
		root, path string
		want       bool
	}{
		{"/roms", "/roms/Game.nes", true},
		{"/roms", "/roms/Europe/Game.nes", true},
		{"/roms", "/roms", true},
		{"/roms", "/other/Game.nes", false},
		{"/roms", "/", false},
	}

	for _, tt := range tests {
		if got := WithinRoot(tt.root, tt.path); got != tt.want {
			t.Errorf("WithinRoot(%q, %q) = %v, want %v", tt.root, tt.path, got, tt.want)
		}
	}
}
