package confirm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAffirmative(t *testing.T) {
	yes := []string{"y", "Y", "yes", "YES", "Yes", " y ", "yes\r\n"}
	for _, in := range yes {
		assert.True(t, Affirmative(in), "input %q", in)
	}

	no := []string{"", "n", "no", "yep", "sure", "y es", "delete", " "}
	for _, in := range no {
		assert.False(t, Affirmative(in), "input %q", in)
	}
}

func TestPromptWritesAndReads(t *testing.T) {
	var out bytes.Buffer
	decide := Prompt(strings.NewReader("yes\n"), &out)

	assert.True(t, decide("Delete? "))
	assert.Equal(t, "Delete? ", out.String())
}

func TestPromptDeclines(t *testing.T) {
	var out bytes.Buffer
	assert.False(t, Prompt(strings.NewReader("n\n"), &out)("? "))
	assert.False(t, Prompt(strings.NewReader("\n"), &out)("? "))
	assert.False(t, Prompt(strings.NewReader(""), &out)("? ")) // closed stdin
}

func TestGateDecidesOnce(t *testing.T) {
	calls := 0
	g := NewGate(func(string) bool {
		calls++
		return true
	})

	assert.True(t, g.Decide("? "))
	assert.True(t, g.Decide("? "))
	assert.Equal(t, 1, calls)
}

func TestAlwaysProceeds(t *testing.T) {
	assert.True(t, Always()("anything"))
}
