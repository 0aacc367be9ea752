package report

import "github.com/shirou/gopsutil/v4/disk"

// FreeBytes returns the free bytes on the volume containing path.
func FreeBytes(path string) (uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, err
	}
	return usage.Free, nil
}
