package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/grindlemire/go-autolayout/internal/watch"
	"github.com/grindlemire/go-autolayout/pkg/layoutfile"
)

// collectLayoutFiles finds all layout files from the given paths.
// Supports:
//   - Direct file paths: "home.layout.yaml"
//   - Directory paths: "./screens"
//   - Recursive pattern: "./..."
//   - Glob patterns: "screens/**/*.layout.yaml"
//
// Files matching any exclude pattern are dropped; each file appears once.
func collectLayoutFiles(paths, exclude []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		p = filepath.Clean(p)
		if seen[p] || watch.Excluded(exclude, p) {
			return
		}
		seen[p] = true
		files = append(files, p)
	}

	for _, path := range paths {
		// Handle ./... recursive pattern
		if root, ok := recursiveRoot(path); ok {
			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					if p != root && watch.Excluded(exclude, p) {
						return filepath.SkipDir
					}
					return nil
				}
				if layoutfile.IsLayoutFile(p) {
					add(p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		if isGlob(path) {
			matches, err := doublestar.FilepathGlob(path, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("bad pattern %s: %w", path, err)
			}
			for _, m := range matches {
				if layoutfile.IsLayoutFile(m) {
					add(m)
				}
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			// Collect layout files in directory (non-recursive)
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && layoutfile.IsLayoutFile(entry.Name()) {
					add(filepath.Join(path, entry.Name()))
				}
			}
		} else if layoutfile.IsLayoutFile(path) {
			add(path)
		}
	}

	return files, nil
}

// recursiveRoot returns the directory of a "dir/..." path.
func recursiveRoot(path string) (string, bool) {
	if path != "..." && !strings.HasSuffix(path, "/...") {
		return "", false
	}
	root := strings.TrimSuffix(strings.TrimSuffix(path, "..."), "/")
	if root == "" {
		root = "."
	}
	return root, true
}

func isGlob(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

// watchRoot returns the directory to watch for a path argument and whether
// it must be watched recursively.
func watchRoot(path string) (string, bool) {
	if root, ok := recursiveRoot(path); ok {
		return root, true
	}
	if isGlob(path) {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(path))
		return filepath.FromSlash(base), true
	}
	return path, false
}
