// Package confirm implements the single suspension point between the
// report phase and the delete phase: summary out, one decision in.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DecisionFunc resolves the proceed/abort choice given the rendered
// prompt. Implementations may block (interactive prompt) or answer
// immediately (unattended mode, test doubles).
type DecisionFunc func(prompt string) bool

// Gate asks its decision function once and caches the answer, so the
// commit phase sees exactly one decision however often it checks.
type Gate struct {
	decide  DecisionFunc
	decided bool
	proceed bool
}

// NewGate wraps a decision function.
func NewGate(decide DecisionFunc) *Gate {
	return &Gate{decide: decide}
}

// Decide returns whether deletion may proceed, consulting the decision
// function on first call only.
func (g *Gate) Decide(prompt string) bool {
	if !g.decided {
		g.proceed = g.decide(prompt)
		g.decided = true
	}
	return g.proceed
}

// Always proceeds unconditionally. Used in unattended mode.
func Always() DecisionFunc {
	return func(string) bool { return true }
}

// Prompt writes the prompt to w and reads a single line from r. Only
// an affirmative answer proceeds; anything else, including an empty
// line or a closed stdin, declines.
func Prompt(r io.Reader, w io.Writer) DecisionFunc {
	reader := bufio.NewReader(r)
	return func(prompt string) bool {
		fmt.Fprint(w, prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		return Affirmative(line)
	}
}

// Affirmative reports whether a line of operator input approves
// deletion: case-insensitive "y" or "yes", surrounding space ignored.
func Affirmative(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
