// Package discoverfs expands the file arguments given to adoc's commands
// into a concrete list of AsciiDoc source paths, walking directories on an
// afero.Fs and skipping directories that are never worth descending into.
package discoverfs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// skipDirs are directories never walked into when a directory argument is
// expanded.
var skipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"vendor":       {},
	"_build":       {},
	".cache":       {},
}

// sourceExtensions are the file extensions treated as AsciiDoc sources when
// walking a directory argument.
var sourceExtensions = map[string]struct{}{
	".adoc":    {},
	".asciidoc": {},
	".asc":     {},
}

// Expand resolves args (a mix of file and directory paths) against fs into
// a sorted, de-duplicated list of AsciiDoc source file paths. Files named
// explicitly are included regardless of extension; directories are walked
// and only files with a recognized AsciiDoc extension are collected.
func Expand(fs afero.Fs, args []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string

	for _, arg := range args {
		info, err := fs.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if _, ok := seen[arg]; !ok {
				seen[arg] = struct{}{}
				out = append(out, arg)
			}

			continue
		}

		walkErr := afero.Walk(fs, arg, func(path string, walkInfo os.FileInfo, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}

			if walkInfo.IsDir() {
				if _, skip := skipDirs[walkInfo.Name()]; skip {
					return filepath.SkipDir
				}

				return nil
			}

			if _, ok := sourceExtensions[strings.ToLower(filepath.Ext(path))]; !ok {
				return nil
			}

			if _, ok := seen[path]; !ok {
				seen[path] = struct{}{}
				out = append(out, path)
			}

			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	sort.Strings(out)

	return out, nil
}
