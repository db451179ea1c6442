// Package scanner discovers OpenFX property names in C/C++ sources.
//
// Discovery is a line-based heuristic rather than a preprocessor: a line
// whose first field is "#define" and that has at least three fields
// contributes its second field when that token carries the property marker
// ("Prop") or is on the inclusion list, and is not on the exclusion list.
// The lists capture the known exceptions in the OpenFX headers and are kept
// deliberately explicit so the discovered set does not drift.
package scanner

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultMarker is the substring that identifies property macros.
const DefaultMarker = "Prop"

// DefaultExclude lists macros that look like properties but are not.
var DefaultExclude = []string{
	"kOfxPropertySuite",
	// property values, not properties
	"kOfxImageEffectPropColourManagementNone",
	"kOfxImageEffectPropColourManagementBasic",
	"kOfxImageEffectPropColourManagementCore",
	"kOfxImageEffectPropColourManagementFull",
	"kOfxImageEffectPropColourManagementOCIO",
}

// DefaultInclude lists properties whose names lack the marker.
var DefaultInclude = []string{
	"kOfxImageEffectFrameVarying",
	"kOfxImageEffectPluginRenderThreadSafety",
}

// DefaultExtensions are the file extensions scanned.
var DefaultExtensions = []string{".c", ".h", ".cxx", ".hxx", ".cpp", ".hpp"}

// Options controls the scan.
type Options struct {
	Marker     string
	Exclude    []string
	Include    []string
	Extensions []string
	// Recursive descends into subdirectories.
	Recursive bool
}

// DefaultOptions returns the options used for the OpenFX include tree.
func DefaultOptions() Options {
	return Options{
		Marker:     DefaultMarker,
		Exclude:    slices.Clone(DefaultExclude),
		Include:    slices.Clone(DefaultInclude),
		Extensions: slices.Clone(DefaultExtensions),
		Recursive:  true,
	}
}

// NameSet is a set of discovered property names.
type NameSet map[string]struct{}

// Add inserts name.
func (s NameSet) Add(name string) { s[name] = struct{}{} }

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Merge adds every name of other.
func (s NameSet) Merge(other NameSet) {
	for name := range other {
		s[name] = struct{}{}
	}
}

// Sorted returns the names in lexical order.
func (s NameSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ScanDir scans every matching file under root. The first unreadable or
// undecodable file aborts the scan.
func ScanDir(root string, opts Options) (NameSet, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to scan %s: not a directory", root)
	}

	names := make(NameSet)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !opts.matchesExtension(path) {
			return nil
		}
		found, err := ScanFile(path, opts)
		if err != nil {
			return err
		}
		names.Merge(found)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// ScanFile scans a single file.
func ScanFile(path string, opts Options) (NameSet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // scanning user-provided sources is the point
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("error reading %s: invalid UTF-8", path)
	}
	return ScanBytes(data, opts), nil
}

// ScanBytes applies the property heuristic to file contents.
func ScanBytes(data []byte, opts Options) NameSet {
	marker := opts.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	names := make(NameSet)
	for _, line := range bytes.Split(data, []byte("\n")) {
		fields := strings.Fields(string(line))
		if len(fields) < 3 || fields[0] != "#define" {
			continue
		}
		token := fields[1]
		if slices.Contains(opts.Exclude, token) {
			continue
		}
		if strings.Contains(token, marker) || containsAny(token, opts.Include) {
			names.Add(token)
		}
	}
	return names
}

func (o Options) matchesExtension(path string) bool {
	exts := o.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	return slices.Contains(exts, filepath.Ext(path))
}

// containsAny reports whether token contains any of the substrings.
func containsAny(token string, subs []string) bool {
	for _, s := range subs {
		if s != "" && strings.Contains(token, s) {
			return true
		}
	}
	return false
}
