package scan

import (
	"io/fs"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

// Candidate is one file selected by age and location for possible
// deletion. Size and ModTime are recorded at scan time; the entry is
// never mutated afterwards.
type Candidate struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// FilesOlderThan recursively enumerates the regular files under dir
// whose last-modified time is strictly before cutoff. Directories and
// symlinks are never returned. Unreadable subtrees, locked files and
// entries that vanish mid-walk are skipped; a failure in one subtree
// never suppresses results from its siblings. Enumeration order is
// unspecified.
func FilesOlderThan(dir string, cutoff time.Time) []Candidate {
	var out []Candidate
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("skipping unreadable entry")
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			// Vanished between ReadDir and Stat — expected on live
			// temp directories.
			return nil
		}
		if info.ModTime().Before(cutoff) {
			out = append(out, Candidate{
				Path:    path,
				Size:    info.Size(),
				ModTime: info.ModTime(),
			})
		}
		return nil
	})
	return out
}
