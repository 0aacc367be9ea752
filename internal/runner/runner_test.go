package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	"github.com/lakshaymaurya-felt/winsweep/internal/confirm"
	"github.com/lakshaymaurya-felt/winsweep/internal/report"
	"github.com/lakshaymaurya-felt/winsweep/internal/sweep"
)

// recordingRemover counts removals without performing them, proving
// which paths a run actually tried to delete.
type recordingRemover struct {
	calls []string
}

func (r *recordingRemover) Remove(path string) error {
	r.calls = append(r.calls, path)
	return os.Remove(path)
}

func writeAged(t *testing.T, path string, size int, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func newRunner(cfg config.Config, decide confirm.DecisionFunc, rem sweep.Remover) (*Runner, *bytes.Buffer) {
	var out bytes.Buffer
	return &Runner{
		Config:  cfg,
		Printer: report.NewPrinter(&out, false),
		Decide:  decide,
		Remover: rem,
	}, &out
}

// Scenario: the scan universe is empty — no location exists at all.
func TestRunEmptyUniverse(t *testing.T) {
	base := t.TempDir()
	cfg := config.Config{
		Groups: []config.SourceGroup{
			{Description: "Temporary files", MaxAgeDays: 7,
				Roots: []string{filepath.Join(base, "nope")}},
			{Description: "Application caches", MaxAgeDays: 7,
				Patterns: []string{filepath.Join(base, "*", "Cache")}},
		},
	}

	rem := &recordingRemover{}
	r, out := newRunner(cfg, func(string) bool {
		t.Fatal("gate must not be consulted with no candidates")
		return false
	}, rem)

	outcome, err := r.Run()
	require.NoError(t, err)
	assert.Zero(t, outcome.Deleted)
	assert.Empty(t, rem.calls)
	assert.Contains(t, out.String(), "No files found to clean.")
	assert.NotContains(t, out.String(), "Files identified")
}

// Scenario: 3 files older than the threshold totaling 1,500,000 bytes
// plus 2 newer files — the report shows "3 files, 1.43 MB" and the
// newer files survive the sweep.
func TestRunAgeBoundary(t *testing.T) {
	now := time.Now()
	old := now.Add(-10 * 24 * time.Hour)
	root := t.TempDir()

	writeAged(t, filepath.Join(root, "one.tmp"), 500000, old)
	writeAged(t, filepath.Join(root, "two.tmp"), 500000, old)
	writeAged(t, filepath.Join(root, "three.tmp"), 500000, old)
	writeAged(t, filepath.Join(root, "new1.tmp"), 100, now)
	writeAged(t, filepath.Join(root, "new2.tmp"), 100, now)

	cfg := config.Config{
		Unattended: true,
		Groups: []config.SourceGroup{
			{Description: "Temporary files", MaxAgeDays: 7, Roots: []string{root}},
		},
	}
	r, out := newRunner(cfg, confirm.Always(), nil)

	outcome, err := r.Run()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Temporary files in '"+root+"': 3 files, 1.43 MB")
	assert.Equal(t, 3, outcome.Deleted)
	assert.Equal(t, int64(1500000), outcome.FreedBytes)

	_, err = os.Stat(filepath.Join(root, "new1.tmp"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "new2.tmp"))
	assert.NoError(t, err)
}

// Scenario: unattended mode, 10 eligible files of 1 MB each — no
// prompt, automatic deletion, "Deleted 10 files, freeing 10.00 MB."
func TestRunUnattended(t *testing.T) {
	now := time.Now()
	old := now.Add(-10 * 24 * time.Hour)
	root := t.TempDir()
	for i := 0; i < 10; i++ {
		writeAged(t, filepath.Join(root, "f"+string(rune('0'+i))), 1048576, old)
	}

	cfg := config.Config{
		Unattended: true,
		Groups: []config.SourceGroup{
			{Description: "Temporary files", MaxAgeDays: 7, Roots: []string{root}},
		},
	}
	r, out := newRunner(cfg, confirm.Always(), nil)

	outcome, err := r.Run()
	require.NoError(t, err)

	s := out.String()
	assert.NotContains(t, s, PromptText)
	assert.Contains(t, s, "Unattended mode")
	assert.Contains(t, s, "Files identified: 10")
	assert.Contains(t, s, "Deleted 10 files, freeing 10.00 MB.")
	assert.Equal(t, 10, outcome.Deleted)
}

// Scenario: two pattern groups resolve to the same physical directory
// holding one eligible file — the aggregated total is 1, not 2.
func TestRunOverlappingGroups(t *testing.T) {
	now := time.Now()
	old := now.Add(-10 * 24 * time.Hour)
	base := t.TempDir()
	writeAged(t, filepath.Join(base, "app", "Cache", "blob"), 2048, old)

	cfg := config.Config{
		Unattended: true,
		Groups: []config.SourceGroup{
			{Description: "Application caches", MaxAgeDays: 7,
				Patterns: []string{filepath.Join(base, "*", "Cache")}},
			{Description: "Generic caches", MaxAgeDays: 7,
				Patterns: []string{filepath.Join(base, "app", "Cache*")}},
		},
	}
	r, out := newRunner(cfg, confirm.Always(), nil)

	outcome, err := r.Run()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Files identified: 1")
	assert.Equal(t, 1, outcome.Deleted)
	assert.Equal(t, int64(2048), outcome.FreedBytes)
}

// Declining the prompt deletes nothing, however large the set.
func TestRunDeclined(t *testing.T) {
	now := time.Now()
	old := now.Add(-10 * 24 * time.Hour)
	root := t.TempDir()
	writeAged(t, filepath.Join(root, "a.tmp"), 100, old)
	writeAged(t, filepath.Join(root, "b.tmp"), 100, old)

	cfg := config.Config{
		Groups: []config.SourceGroup{
			{Description: "Temporary files", MaxAgeDays: 7, Roots: []string{root}},
		},
	}
	rem := &recordingRemover{}
	r, out := newRunner(cfg, func(string) bool { return false }, rem)

	outcome, err := r.Run()
	require.NoError(t, err)

	assert.Zero(t, outcome.Deleted)
	assert.Empty(t, rem.calls)
	assert.Contains(t, out.String(), "No files were deleted.")

	_, err = os.Stat(filepath.Join(root, "a.tmp"))
	assert.NoError(t, err)
}

// The free-space line, when enabled, precedes the summary totals.
func TestRunFreeSpaceBeforeSummary(t *testing.T) {
	now := time.Now()
	old := now.Add(-10 * 24 * time.Hour)
	root := t.TempDir()
	writeAged(t, filepath.Join(root, "a.tmp"), 100, old)

	cfg := config.Config{
		Unattended: true,
		Groups: []config.SourceGroup{
			{Description: "Temporary files", MaxAgeDays: 7, Roots: []string{root}},
		},
	}
	r, out := newRunner(cfg, confirm.Always(), nil)
	r.FreeSpacePath = root

	_, err := r.Run()
	require.NoError(t, err)

	s := out.String()
	free := strings.Index(s, "Free space on")
	summary := strings.Index(s, "Files identified")
	require.GreaterOrEqual(t, free, 0)
	require.GreaterOrEqual(t, summary, 0)
	assert.Less(t, free, summary)
}

// A file vanishing between scan and delete is expected; the outcome
// simply reports less than the summary promised.
func TestRunOutcomeMayTrailSummary(t *testing.T) {
	now := time.Now()
	old := now.Add(-10 * 24 * time.Hour)
	root := t.TempDir()
	doomed := filepath.Join(root, "vanishes.tmp")
	writeAged(t, doomed, 100, old)
	writeAged(t, filepath.Join(root, "stays.tmp"), 100, old)

	cfg := config.Config{
		Groups: []config.SourceGroup{
			{Description: "Temporary files", MaxAgeDays: 7, Roots: []string{root}},
		},
	}
	r, out := newRunner(cfg, func(string) bool {
		// Simulate the race: the file disappears while the operator
		// is looking at the prompt.
		require.NoError(t, os.Remove(doomed))
		return true
	}, nil)

	outcome, err := r.Run()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Files identified: 2")
	assert.Equal(t, 1, outcome.Deleted)
	assert.Equal(t, int64(100), outcome.FreedBytes)
}
