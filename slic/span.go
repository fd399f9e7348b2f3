package slic

import (
	"slices"
	"strings"
)

// ArgSpan is a read-only view over a contiguous suffix of the argument
// slice handed to NewParser. It never copies the tokens, so it is only
// meaningful while that slice is left untouched.
type ArgSpan struct {
	args []string
}

// Len returns the number of tokens in the span.
func (s ArgSpan) Len() int { return len(s.args) }

// Empty reports whether the span holds no tokens.
func (s ArgSpan) Empty() bool { return len(s.args) == 0 }

// At returns the token at index i. It panics if i is out of range.
func (s ArgSpan) At(i int) string { return s.args[i] }

// Front returns the first token. It panics on an empty span.
func (s ArgSpan) Front() string { return s.args[0] }

// Back returns the last token. It panics on an empty span.
func (s ArgSpan) Back() string { return s.args[len(s.args)-1] }

// Strings returns the tokens as a slice sharing the caller's backing
// array. Capacity is clipped so appending never writes into it.
func (s ArgSpan) Strings() []string { return slices.Clip(s.args) }

// Equal reports whether both spans hold the same tokens in the same order.
func (s ArgSpan) Equal(other ArgSpan) bool { return slices.Equal(s.args, other.args) }

func (s ArgSpan) String() string {
	return "[" + strings.Join(s.args, " ") + "]"
}
