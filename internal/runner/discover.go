package runner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/donaldgifford/doccompress/internal/config"
)

// recursiveSuffix marks a directory argument that is walked recursively,
// in the manner of Go package patterns.
const recursiveSuffix = "/..."

// Discover expands path arguments into the list of files to compress.
//
// A file argument is always included, whatever its extension. A directory
// argument contributes its direct entries matching cfg.Extensions; with a
// trailing "/..." it is walked recursively, skipping directories whose base
// name matches a cfg.SkipDirs pattern. Duplicates are dropped and the order
// of first appearance is kept. Arguments that cannot be read are returned
// as errors without stopping the walk of the others.
func Discover(paths []string, cfg *config.RunnerConfig) ([]string, []error) {
	var (
		files []string
		errs  []error
		seen  = make(map[string]bool)
	)

	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range paths {
		root, recursive := splitRecursive(arg)

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path == root {
				if !d.IsDir() {
					add(path)
				}
				return nil
			}
			if d.IsDir() {
				if !recursive || skipDir(d.Name(), cfg.SkipDirs) {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() && hasExtension(path, cfg.Extensions) {
				add(path)
			}
			return nil
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", arg, err))
		}
	}

	return files, errs
}

func splitRecursive(arg string) (root string, recursive bool) {
	if arg == "..." {
		return ".", true
	}
	if dir, ok := strings.CutSuffix(filepath.ToSlash(arg), recursiveSuffix); ok {
		if dir == "" {
			dir = "/"
		}
		return filepath.FromSlash(dir), true
	}
	return arg, false
}

func skipDir(name string, patterns []string) bool {
	return slices.ContainsFunc(patterns, func(pattern string) bool {
		ok, err := filepath.Match(pattern, name)
		return err == nil && ok
	})
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	return slices.ContainsFunc(extensions, func(want string) bool {
		return strings.EqualFold(ext, want)
	})
}
