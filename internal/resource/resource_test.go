package resource

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/cargobug/internal/config"
)

func mkdirs(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFindFolderParents(t *testing.T) {
	root := t.TempDir()
	start := filepath.Join(root, "a", "b", "c")
	mkdirs(t, start, filepath.Join(root, "a", "assets"))

	got, err := FindFolder(start, "assets", 3, 3)
	if err != nil {
		t.Fatalf("FindFolder error: %v", err)
	}
	if got != filepath.Join(root, "a", "assets") {
		t.Errorf("FindFolder = %s, expected the ancestor's assets", got)
	}
}

func TestFindFolderParentsBeforeKids(t *testing.T) {
	root := t.TempDir()
	start := filepath.Join(root, "game")
	mkdirs(t, filepath.Join(root, "assets"), filepath.Join(start, "sub", "assets"))

	got, err := FindFolder(start, "assets", 3, 3)
	if err != nil {
		t.Fatalf("FindFolder error: %v", err)
	}
	if got != filepath.Join(root, "assets") {
		t.Errorf("FindFolder = %s, expected the parent match to win", got)
	}
}

func TestFindFolderKids(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, filepath.Join(root, "x", "y", "assets"))

	got, err := FindFolder(root, "assets", 0, 3)
	if err != nil {
		t.Fatalf("FindFolder error: %v", err)
	}
	if got != filepath.Join(root, "x", "y", "assets") {
		t.Errorf("FindFolder = %s", got)
	}
}

func TestFindFolderDepthLimits(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, filepath.Join(root, "1", "2", "3", "4", "assets"))

	_, err := FindFolder(root, "assets", 0, 3)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindFolder beyond depth = %v, expected ErrNotFound", err)
	}

	start := filepath.Join(root, "1", "2", "3", "4", "5", "6", "7")
	mkdirs(t, start)
	if _, err := FindFolder(start, "assets", 2, 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindFolder above limit = %v, expected ErrNotFound", err)
	}
	if _, err := FindFolder(start, "assets", 3, 0); err != nil {
		t.Errorf("FindFolder within limit error: %v", err)
	}
}

func TestFinderLoadFont(t *testing.T) {
	root := t.TempDir()
	fontDir := filepath.Join(root, "assets", "fonts")
	mkdirs(t, fontDir)
	if err := os.WriteFile(filepath.Join(fontDir, "test.ttf"), []byte("font-bytes"), 0o600); err != nil {
		t.Fatal(err)
	}

	f := Finder{Start: root, Folder: "assets", Up: 3, Down: 3}
	font, err := f.LoadFont("fonts/test.ttf")
	if err != nil {
		t.Fatalf("LoadFont error: %v", err)
	}
	if font.Name != "fonts/test.ttf" || string(font.Data) != "font-bytes" {
		t.Errorf("LoadFont = %+v", font)
	}

	if _, err := f.LoadFont("fonts/missing.ttf"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadFont(missing) = %v, expected ErrNotFound", err)
	}
}

func TestShippedMenuFont(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join("..", "..", config.LocalConfigPath))
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Menu.Font == "" {
		t.Fatal("project config sets no menu font")
	}

	f := Finder{Start: ".", Folder: cfg.Assets.Folder, Up: cfg.Assets.SearchUp, Down: cfg.Assets.SearchDown}
	font, err := f.LoadFont(cfg.Menu.Font)
	if err != nil {
		t.Fatalf("LoadFont(%q) error: %v", cfg.Menu.Font, err)
	}
	if len(font.Data) == 0 {
		t.Error("font file is empty")
	}
}
