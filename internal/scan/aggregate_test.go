package scan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDedupAcrossGroups(t *testing.T) {
	mod := time.Now().Add(-time.Hour)
	a := []Candidate{
		{Path: "/x/app/Cache/one", Size: 100, ModTime: mod},
		{Path: "/x/app/Cache/two", Size: 200, ModTime: mod},
	}
	b := []Candidate{
		{Path: "/x/app/Cache/two", Size: 200, ModTime: mod}, // overlap
		{Path: "/x/app/Logs/run.log", Size: 300, ModTime: mod},
	}

	got := Dedup(a, b)
	assert.Len(t, got, 3)

	s := Summarize(got)
	assert.Equal(t, 3, s.Files)
	assert.Equal(t, int64(600), s.Bytes)
}

func TestDedupEmpty(t *testing.T) {
	assert.Empty(t, Dedup())
	assert.Empty(t, Dedup(nil, nil))

	s := Summarize(nil)
	assert.Zero(t, s.Files)
	assert.Zero(t, s.Bytes)
}

func TestDedupUncleanedPaths(t *testing.T) {
	mod := time.Now()
	got := Dedup([]Candidate{
		{Path: "/x/a/../a/f", Size: 10, ModTime: mod},
		{Path: "/x/a/f", Size: 10, ModTime: mod},
	})
	assert.Len(t, got, 1)
}
