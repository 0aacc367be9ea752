package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/lakshaymaurya-felt/winsweep/internal/config"
)

// Line is one per-source scan report entry: a root or resolved
// directory with the count and summed size of its matching files.
// Purely for display; totals are recomputed after global dedup.
type Line struct {
	Description string
	Path        string
	Files       int
	Bytes       int64
}

// geckoCacheSubdirs are the fixed cache locations inside a Gecko-style
// profile directory: the cache entry store, the cache root, and the
// pre-cache2 legacy name.
var geckoCacheSubdirs = []string{
	filepath.Join("cache2", "entries"),
	"cache2",
	"Cache",
}

// Collector walks the configured source groups, emitting one report
// line per scanned source and accumulating deletion candidates.
type Collector struct {
	now     time.Time
	report  func(Line)
	protect []string
}

// NewCollector builds a collector. report receives one Line per
// scanned source; protect lists path prefixes that never yield
// candidates.
func NewCollector(now time.Time, protect []string, report func(Line)) *Collector {
	if report == nil {
		report = func(Line) {}
	}
	return &Collector{now: now, report: report, protect: protect}
}

// Collect scans one source group and returns its candidate files.
func (c *Collector) Collect(g config.SourceGroup) []Candidate {
	cutoff := g.Cutoff(c.now)
	switch {
	case g.Profiles:
		return c.collectProfiles(g, cutoff)
	case len(g.Patterns) > 0:
		return c.collectPatterns(g, cutoff)
	default:
		return c.scanRoots(g.Description, g.Roots, cutoff)
	}
}

// scanRoots runs the age filter over literal roots. Roots that do not
// exist (or are not directories) are skipped without a report line;
// existing roots always get exactly one line, "nothing to clean" when
// no file qualifies.
func (c *Collector) scanRoots(desc string, roots []string, cutoff time.Time) []Candidate {
	var out []Candidate
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			log.Debug().Str("root", root).Msg("root absent, skipping")
			continue
		}
		files := c.prune(FilesOlderThan(root, cutoff))
		var bytes int64
		for _, f := range files {
			bytes += f.Size
		}
		c.report(Line{Description: desc, Path: root, Files: len(files), Bytes: bytes})
		log.Debug().Str("root", root).Int("files", len(files)).
			Str("size", humanize.IBytes(uint64(bytes))).Msg("scanned root")
		out = append(out, files...)
	}
	return out
}

// collectPatterns resolves every pattern of the group, deduplicates
// the resulting directories by canonical path, and scans each once.
func (c *Collector) collectPatterns(g config.SourceGroup, cutoff time.Time) []Candidate {
	dirs := resolveUnique(g.Patterns)
	return c.scanRoots(g.Description, dirs, cutoff)
}

// collectProfiles discovers Gecko-style profile directories via the
// group's patterns, then scans the fixed cache sub-roots of each
// profile, tagging report lines with the profile directory name.
func (c *Collector) collectProfiles(g config.SourceGroup, cutoff time.Time) []Candidate {
	var out []Candidate
	for _, profile := range resolveUnique(g.Patterns) {
		desc := g.Description + " (" + filepath.Base(profile) + ")"
		roots := make([]string, 0, len(geckoCacheSubdirs))
		for _, sub := range geckoCacheSubdirs {
			roots = append(roots, filepath.Join(profile, sub))
		}
		out = append(out, c.scanRoots(desc, roots, cutoff)...)
	}
	return out
}

// prune drops candidates living under a protected path prefix.
func (c *Collector) prune(files []Candidate) []Candidate {
	if len(c.protect) == 0 {
		return files
	}
	kept := files[:0]
	for _, f := range files {
		if c.protected(f.Path) {
			log.Warn().Str("path", f.Path).Msg("refusing protected path")
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

func (c *Collector) protected(path string) bool {
	key := canonicalKey(path)
	for _, p := range c.protect {
		prefix := canonicalKey(p)
		if key == prefix || strings.HasPrefix(key, prefix+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// resolveUnique expands the patterns and deduplicates the resolved
// directories by canonical path. Output is sorted so report lines are
// stable from run to run.
func resolveUnique(patterns []string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, pat := range patterns {
		for _, dir := range ExpandPattern(pat) {
			key := canonicalKey(dir)
			if seen[key] {
				continue
			}
			seen[key] = true
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	return dirs
}
