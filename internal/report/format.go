// Package report renders the console output contract: per-source scan
// lines, the run summary, and the deletion outcome.
package report

import "fmt"

const (
	kb = 1 << 10
	mb = 1 << 20
	gb = 1 << 30
)

// FormatSize renders a byte count with binary (1024-based) units,
// picking the largest unit the value reaches. KB and above get two
// decimals; plain bytes stay integral.
func FormatSize(b int64) string {
	switch {
	case b >= gb:
		return fmt.Sprintf("%.2f GB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.2f MB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.2f KB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
