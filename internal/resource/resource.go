// Package resource locates the on-disk assets folder and loads files from it.
//
// The folder is found by searching the starting directory and up to Up of
// its ancestors for a child with the folder name, then descending up to
// Down levels below the start. A miss is an error; callers constructing
// screens turn it into a configuration error.
package resource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vovakirdan/cargobug/internal/config"
	"github.com/vovakirdan/cargobug/internal/core"
)

// ErrNotFound is returned when the folder or a file inside it is missing.
var ErrNotFound = errors.New("resource: not found")

// FindFolder searches parents then kids of start for a directory called name.
func FindFolder(start, name string, up, down int) (string, error) {
	start, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	// Parents, nearest first (depth 0 is start itself).
	dir := start
	for depth := 0; depth <= up; depth++ {
		candidate := filepath.Join(dir, name)
		if isDir(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// Kids, breadth first so the shallowest match wins.
	level := []string{start}
	for depth := 0; depth < down && len(level) > 0; depth++ {
		var next []string
		for _, d := range level {
			entries, err := os.ReadDir(d)
			if err != nil {
				continue
			}
			sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
			for _, e := range entries {
				if !e.IsDir() {
					continue
				}
				child := filepath.Join(d, e.Name())
				if e.Name() == name {
					return child, nil
				}
				next = append(next, child)
			}
		}
		level = next
	}

	return "", fmt.Errorf("%w: folder %q within %d levels up or %d down from %s", ErrNotFound, name, up, down, start)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Finder resolves assets-relative paths.
type Finder struct {
	Start  string // Directory the search starts from
	Folder string // Folder name, usually "assets"
	Up     int
	Down   int
}

// NewFinder builds a Finder from configuration, starting at the working
// directory.
func NewFinder(cfg config.AssetsConfig) Finder {
	start, err := os.Getwd()
	if err != nil {
		start = "."
	}
	return Finder{
		Start:  start,
		Folder: cfg.Folder,
		Up:     cfg.SearchUp,
		Down:   cfg.SearchDown,
	}
}

// Resolve returns the absolute path of rel inside the assets folder.
func (f Finder) Resolve(rel string) (string, error) {
	root, err := FindFolder(f.Start, f.Folder, f.Up, f.Down)
	if err != nil {
		return "", err
	}
	path := filepath.Join(root, filepath.FromSlash(rel))
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s within %s", ErrNotFound, rel, root)
		}
		return "", fmt.Errorf("resource: stat %s: %w", path, err)
	}
	return path, nil
}

// LoadFont reads a font file from the assets folder.
func (f Finder) LoadFont(rel string) (*core.Font, error) {
	path, err := f.Resolve(rel)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("resource: read font %s: %w", path, err)
	}
	return &core.Font{Name: rel, Data: data}, nil
}
