package scan

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/IGLOU-EU/go-wildcard"
)

// ExpandPattern resolves a wildcard path pattern into the set of
// existing directories it matches. A '*' or '?' inside a segment
// matches directory entries at that level only; patterns may carry
// wildcards on several levels (e.g. <root>\*\*\Cache*). An unmatched
// pattern or an unreadable level yields zero results, never an error.
// Duplicates across separate calls are the caller's problem.
func ExpandPattern(pattern string) []string {
	if pattern == "" {
		return nil
	}
	pattern = filepath.Clean(pattern)
	sep := string(filepath.Separator)

	vol := filepath.VolumeName(pattern)
	rest := pattern[len(vol):]
	base := vol
	if strings.HasPrefix(rest, sep) {
		base = vol + sep
		rest = strings.TrimPrefix(rest, sep)
	}

	prefixes := []string{base}
	for _, seg := range strings.Split(rest, sep) {
		if seg == "" {
			continue
		}
		var next []string
		if !strings.ContainsAny(seg, "*?") {
			for _, p := range prefixes {
				next = append(next, joinSegment(p, seg))
			}
		} else {
			for _, p := range prefixes {
				dir := p
				if dir == "" {
					dir = "."
				}
				entries, err := os.ReadDir(dir)
				if err != nil {
					// Missing or permission-denied level: nothing to
					// match here, keep going with the other prefixes.
					continue
				}
				for _, e := range entries {
					if matchSegment(seg, e.Name()) {
						next = append(next, joinSegment(p, e.Name()))
					}
				}
			}
		}
		if len(next) == 0 {
			return nil
		}
		prefixes = next
	}

	var dirs []string
	for _, p := range prefixes {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			dirs = append(dirs, p)
		}
	}
	return dirs
}

// foldCase makes segment matching case-insensitive on Windows, where
// the filesystem compares names that way ("Cache*" must find "cache").
var foldCase = runtime.GOOS == "windows"

// matchSegment matches one directory entry name against one pattern
// segment.
func matchSegment(pattern, name string) bool {
	if foldCase {
		return wildcard.Match(strings.ToLower(pattern), strings.ToLower(name))
	}
	return wildcard.Match(pattern, name)
}

func joinSegment(prefix, name string) string {
	if prefix == "" {
		return name
	}
	if strings.HasSuffix(prefix, string(filepath.Separator)) {
		return prefix + name
	}
	return prefix + string(filepath.Separator) + name
}

// canonicalKey returns the deduplication key for a path: the cleaned
// absolute path, case-folded on Windows where paths compare
// case-insensitively.
func canonicalKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if runtime.GOOS == "windows" {
		return strings.ToLower(abs)
	}
	return abs
}
