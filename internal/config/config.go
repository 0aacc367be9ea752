package config

import (
	"path/filepath"
	"time"
)

// Default age thresholds in days. Temp and cache material goes stale
// quickly; diagnostic material (dumps, servicing logs) is kept longer
// because support workflows may still want it.
const (
	DefaultTempAgeDays   = 7
	DefaultSystemAgeDays = 30
)

// SourceGroup is one named scan unit: an age threshold paired with
// either literal root directories or wildcard patterns resolved into
// directories at run time. Exactly one of Roots and Patterns is set.
type SourceGroup struct {
	// Name is the unique identifier for this group.
	Name string

	// Description prefixes every scan report line for this group.
	Description string

	// MaxAgeDays is the age threshold; files modified within the last
	// MaxAgeDays days are never candidates.
	MaxAgeDays int

	// Roots are literal directories, skipped silently when absent.
	Roots []string

	// Patterns are wildcard path patterns resolved into directories.
	Patterns []string

	// Profiles marks a Gecko-style profile group: Patterns locate
	// profile directories and the fixed cache sub-roots of each
	// discovered profile are scanned (see the collector).
	Profiles bool

	// RequiresAdmin indicates the roots normally need elevation.
	RequiresAdmin bool
}

// Cutoff returns the instant before which files in this group are
// eligible for deletion.
func (g SourceGroup) Cutoff(now time.Time) time.Time {
	return now.Add(-time.Duration(g.MaxAgeDays) * 24 * time.Hour)
}

// LogSettings controls the rotating diagnostic log.
type LogSettings struct {
	Dir        string
	MaxSizeMB  int
	MaxBackups int
}

// Config is the immutable run configuration. It is built once at
// startup and passed explicitly into the collector and runner; nothing
// reads scan settings from ambient state after that.
type Config struct {
	Groups      []SourceGroup
	NeverDelete []string
	Unattended  bool
	Debug       bool
	Log         LogSettings
}

// DefaultGroups returns the six standard scan groups with paths
// expanded from the current environment. tempAgeDays applies to temp,
// cache and log locations; systemAgeDays to diagnostic locations.
func DefaultGroups(tempAgeDays, systemAgeDays int) []SourceGroup {
	local := localAppData()
	roaming := appData()
	w := winDir()

	return []SourceGroup{
		{
			Name:        "TempRoots",
			Description: "Temporary files",
			MaxAgeDays:  tempAgeDays,
			Roots: []string{
				tempDir(),
				filepath.Join(local, "Temp"),
				filepath.Join(w, "Temp"),
			},
		},
		{
			Name:        "Diagnostics",
			Description: "Crash dumps and servicing logs",
			MaxAgeDays:  systemAgeDays,
			Roots: []string{
				filepath.Join(w, "Minidump"),
				filepath.Join(w, "Logs", "CBS"),
				filepath.Join(local, "CrashDumps"),
				filepath.Join(local, "Microsoft", "Windows", "WER", "ReportArchive"),
				filepath.Join(local, "Microsoft", "Windows", "WER", "ReportQueue"),
				filepath.Join(programData(), "Microsoft", "Windows", "WER", "ReportArchive"),
				filepath.Join(programData(), "Microsoft", "Windows", "WER", "ReportQueue"),
			},
			RequiresAdmin: true,
		},
		{
			Name:        "LegacyBrowserCache",
			Description: "Legacy browser cache",
			MaxAgeDays:  tempAgeDays,
			Roots: []string{
				filepath.Join(local, "Microsoft", "Windows", "INetCache"),
			},
		},
		{
			Name:        "AppDataCaches",
			Description: "Application caches",
			MaxAgeDays:  tempAgeDays,
			Patterns: []string{
				filepath.Join(local, "*", "Cache*"),
				filepath.Join(local, "*", "*", "Cache*"),
				filepath.Join(roaming, "*", "*", "Cache*"),
			},
		},
		{
			Name:        "AppDataTempLogs",
			Description: "Application temp and log files",
			MaxAgeDays:  tempAgeDays,
			Patterns: []string{
				filepath.Join(local, "*", "Temp"),
				filepath.Join(local, "*", "Logs"),
				filepath.Join(roaming, "*", "Logs"),
			},
		},
		{
			Name:        "GeckoProfiles",
			Description: "Browser profile cache",
			MaxAgeDays:  tempAgeDays,
			Patterns: []string{
				filepath.Join(local, "Mozilla", "Firefox", "Profiles", "*"),
				// Firefox forks (LibreWolf, Waterfox, ...) install under
				// their own vendor directory but keep the profile layout.
				filepath.Join(local, "*", "*", "Profiles", "*"),
			},
			Profiles: true,
		},
	}
}

// Default returns the full default configuration for this host.
func Default() Config {
	return Config{
		Groups:      DefaultGroups(DefaultTempAgeDays, DefaultSystemAgeDays),
		NeverDelete: NeverDeletePaths(),
		Log: LogSettings{
			Dir:        DefaultLogDir(),
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}
