package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/winsweep/internal/scan"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	clrGreen = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	clrCyan  = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	clrMuted = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}

	styleSize  = lipgloss.NewStyle().Foreground(clrCyan)
	styleOK    = lipgloss.NewStyle().Foreground(clrGreen).Bold(true)
	styleMuted = lipgloss.NewStyle().Foreground(clrMuted)
)

// ─── Printer ─────────────────────────────────────────────────────────────────

// Printer writes the user-facing report. Styling is applied only when
// color is enabled, so the contract strings stay greppable when piped.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter builds a printer. color should be true only when out is a
// terminal.
func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{out: out, color: color}
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Line prints one per-source scan report entry.
func (p *Printer) Line(l scan.Line) {
	if l.Files == 0 {
		fmt.Fprintf(p.out, "%s in '%s': %s\n",
			l.Description, l.Path, p.render(styleMuted, "nothing to clean."))
		return
	}
	fmt.Fprintf(p.out, "%s in '%s': %d files, %s\n",
		l.Description, l.Path, l.Files, p.render(styleSize, FormatSize(l.Bytes)))
}

// Summary prints the run-level totals after deduplication.
func (p *Printer) Summary(s scan.Summary) {
	fmt.Fprintf(p.out, "\nFiles identified: %d\n", s.Files)
	fmt.Fprintf(p.out, "Potential space to free: %s\n",
		p.render(styleSize, FormatSize(s.Bytes)))
}

// NothingFound prints the empty-universe message.
func (p *Printer) NothingFound() {
	fmt.Fprintf(p.out, "\n%s\n", p.render(styleOK, "No files found to clean."))
}

// UnattendedNotice announces that deletion proceeds without a prompt.
func (p *Printer) UnattendedNotice() {
	fmt.Fprintf(p.out, "%s\n",
		p.render(styleMuted, "Unattended mode: deleting without confirmation."))
}

// Declined confirms that nothing was touched after a negative answer.
func (p *Printer) Declined() {
	fmt.Fprintf(p.out, "%s\n", p.render(styleOK, "No files were deleted."))
}

// Outcome prints the deletion result. The numbers may be lower than
// the summary: individual deletions are allowed to fail.
func (p *Printer) Outcome(deleted int, freedBytes int64) {
	fmt.Fprintf(p.out, "Deleted %d files, freeing %s.\n",
		deleted, p.render(styleOK, FormatSize(freedBytes)))
}

// FreeSpace prints the free space on a volume.
func (p *Printer) FreeSpace(path string, free uint64) {
	fmt.Fprintf(p.out, "Free space on '%s': %s\n",
		path, p.render(styleSize, FormatSize(int64(free))))
}
