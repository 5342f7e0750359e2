// Package includefs provides an afero-backed asciidoc.IncludeResolver that
// resolves `include::path[]` directives against a filesystem, relative to
// the directory of the file being parsed.
package includefs

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/go-asciidoc/asciidoc"
)

// Resolver resolves include directives by reading files from an afero.Fs.
// Paths are resolved relative to BaseDir unless already absolute.
type Resolver struct {
	Fs      afero.Fs
	BaseDir string
}

// New creates a Resolver rooted at baseDir on fs.
func New(fs afero.Fs, baseDir string) *Resolver {
	return &Resolver{Fs: fs, BaseDir: baseDir}
}

// ResolveInclude implements asciidoc.IncludeResolver. It honors the
// `lines=` attribute (a comma-separated list of N or N..M ranges, 1-indexed,
// M of -1 meaning end of file) to select a subset of the included file.
func (r *Resolver) ResolveInclude(path string, attrs asciidoc.Attrlist) (string, error) {
	full := path
	if !filepath.IsAbs(path) {
		full = filepath.Join(r.BaseDir, path)
	}

	data, err := afero.ReadFile(r.Fs, full)
	if err != nil {
		return "", fmt.Errorf("includefs: reading %s: %w", full, err)
	}

	content := string(data)

	if attr, ok := attrs.NamedAttribute("lines"); ok {
		selected, selErr := selectLines(content, attr.Value.Data())
		if selErr != nil {
			return "", fmt.Errorf("includefs: %s: %w", full, selErr)
		}

		return selected, nil
	}

	return content, nil
}

func selectLines(content, spec string) (string, error) {
	lines := strings.Split(content, "\n")

	ranges, err := parseLineRanges(spec, len(lines))
	if err != nil {
		return "", err
	}

	var out []string
	for _, rg := range ranges {
		for i := rg.start; i <= rg.end && i <= len(lines); i++ {
			out = append(out, lines[i-1])
		}
	}

	return strings.Join(out, "\n"), nil
}

type lineRange struct {
	start, end int
}

func parseLineRanges(spec string, total int) ([]lineRange, error) {
	var ranges []lineRange

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if idx := strings.Index(part, ".."); idx >= 0 {
			startStr, endStr := part[:idx], part[idx+2:]

			start, err := strconv.Atoi(startStr)
			if err != nil {
				return nil, fmt.Errorf("invalid range start %q", startStr)
			}

			end, err := strconv.Atoi(endStr)
			if err != nil {
				return nil, fmt.Errorf("invalid range end %q", endStr)
			}

			if end == -1 {
				end = total
			}

			ranges = append(ranges, lineRange{start: start, end: end})

			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid line number %q", part)
		}

		ranges = append(ranges, lineRange{start: n, end: n})
	}

	return ranges, nil
}
