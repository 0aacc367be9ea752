// Package runner ties the pipeline together: scan every source group,
// deduplicate, report, gate on the operator's decision, delete.
package runner

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	"github.com/lakshaymaurya-felt/winsweep/internal/confirm"
	"github.com/lakshaymaurya-felt/winsweep/internal/report"
	"github.com/lakshaymaurya-felt/winsweep/internal/scan"
	"github.com/lakshaymaurya-felt/winsweep/internal/sweep"
	"github.com/lakshaymaurya-felt/winsweep/internal/winutil"
)

// PromptText is the interactive confirmation prompt.
const PromptText = "Delete these files? [y/N] "

// Runner executes one scan → confirm → delete pass. All collaborators
// are injectable; zero values fall back to production behavior except
// Printer and Decide, which the caller must provide.
type Runner struct {
	Config  config.Config
	Printer *report.Printer
	Decide  confirm.DecisionFunc
	Remover sweep.Remover

	// Now stands in for time.Time so tests can pin the cutoff.
	Now func() time.Time

	// FreeSpacePath enables the free-space line for that volume when
	// non-empty.
	FreeSpacePath string
}

// Run executes the pipeline sequentially: groups one after another,
// sources within a group one after another. The returned outcome is
// zero-valued when no candidates were found or the operator declined;
// neither is an error.
func (r *Runner) Run() (sweep.Outcome, error) {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	collector := scan.NewCollector(now(), r.Config.NeverDelete, r.Printer.Line)

	warned := false
	lists := make([][]scan.Candidate, 0, len(r.Config.Groups))
	for _, g := range r.Config.Groups {
		if g.RequiresAdmin && !warned && !winutil.IsElevated() {
			log.Warn().Str("group", g.Name).
				Msg("not elevated; admin-only locations may come up empty")
			warned = true
		}
		lists = append(lists, collector.Collect(g))
	}

	candidates := scan.Dedup(lists...)
	if len(candidates) == 0 {
		r.Printer.NothingFound()
		return sweep.Outcome{}, nil
	}

	r.printFreeSpace()
	summary := scan.Summarize(candidates)
	r.Printer.Summary(summary)

	if r.Config.Unattended {
		r.Printer.UnattendedNotice()
	}
	gate := confirm.NewGate(r.Decide)
	if !gate.Decide(PromptText) {
		r.Printer.Declined()
		return sweep.Outcome{}, nil
	}

	outcome := sweep.Executor{Remover: r.Remover}.Sweep(candidates)
	r.Printer.Outcome(outcome.Deleted, outcome.FreedBytes)
	r.printFreeSpace()
	return outcome, nil
}

func (r *Runner) printFreeSpace() {
	if r.FreeSpacePath == "" {
		return
	}
	free, err := report.FreeBytes(r.FreeSpacePath)
	if err != nil {
		log.Debug().Err(err).Str("path", r.FreeSpacePath).Msg("disk usage lookup failed")
		return
	}
	r.Printer.FreeSpace(r.FreeSpacePath, free)
}
