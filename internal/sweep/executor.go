// Package sweep performs the best-effort deletion phase over the
// deduplicated candidate set.
package sweep

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/lakshaymaurya-felt/winsweep/internal/scan"
)

// Remover abstracts the delete syscall so tests can prove a declined
// or dry run never removes anything.
type Remover interface {
	Remove(path string) error
}

// OSRemover deletes through the os package.
type OSRemover struct{}

func (OSRemover) Remove(path string) error { return os.Remove(path) }

// Outcome reports what the deletion pass actually achieved. Deleted
// and FreedBytes may legitimately be lower than the scanned totals:
// files vanish or get locked between scan and delete.
type Outcome struct {
	Deleted    int
	FreedBytes int64
	Failed     int
}

// Executor removes candidate files one at a time. Every failure is
// isolated to its file: the loop never stops and the run never fails.
type Executor struct {
	Remover Remover
}

// Sweep deletes the candidates. Each file is re-checked before
// removal; a file already gone is skipped silently (expected on live
// temp directories), and a directory is refused outright no matter
// how it got into the set.
func (e Executor) Sweep(candidates []scan.Candidate) Outcome {
	remover := e.Remover
	if remover == nil {
		remover = OSRemover{}
	}

	var out Outcome
	for _, c := range candidates {
		info, err := os.Lstat(c.Path)
		if err != nil {
			continue
		}
		if info.IsDir() {
			log.Warn().Str("path", c.Path).Msg("directory in candidate set, refusing")
			continue
		}
		if err := remover.Remove(c.Path); err != nil {
			out.Failed++
			log.Debug().Err(err).Str("path", c.Path).Msg("could not delete")
			continue
		}
		out.Deleted++
		out.FreedBytes += c.Size
	}

	if out.Failed > 0 {
		log.Info().Int("failed", out.Failed).Msg("some files could not be deleted")
	}
	return out
}
