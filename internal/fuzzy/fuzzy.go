// Package fuzzy provides fuzzy matching for option-name suggestions
// Used by slic/parser.go to attach "Did you mean" hints to unknown options
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher ranks candidate names by edit distance to an input
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher that accepts candidates up to maxDistance edits away
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // single letters match too much to be useful
	}
}

// Match is one ranked candidate
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindBest returns the best candidate, or "" when none is close enough
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within range, best first.
// Leading dashes are ignored on both sides, so "-verbose" still finds
// "--verbose". Candidates identical to input are skipped.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	key := normalize(input)
	if len(key) < m.minLength {
		return nil
	}

	var matches []Match
	for _, candidate := range candidates {
		if candidate == input {
			continue
		}
		other := normalize(candidate)

		distance := m.levenshteinDistance(key, other)
		if distance > m.maxDistance {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: distance,
			Score:    m.calculateScore(key, other, distance),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimLeft(name, "-"))
}

// calculateScore blends edit distance with prefix and length similarity
func (m *Matcher) calculateScore(input, candidate string, distance int) float64 {
	longest := max(len(input), len(candidate))
	if longest == 0 {
		return 1.0
	}

	editScore := 1.0 - float64(distance)/float64(longest)

	prefixBonus := 0.0
	if p := commonPrefixLength(input, candidate); p > 0 {
		prefixBonus = float64(p) / float64(min(len(input), len(candidate))) * 0.3
	}

	lengthBonus := (1.0 - float64(abs(len(input)-len(candidate)))/float64(longest)) * 0.2

	return min(editScore+prefixBonus+lengthBonus, 1.0)
}

// levenshteinDistance returns the edit distance, or maxDistance+1 as soon
// as the result is known to exceed maxDistance
func (m *Matcher) levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func commonPrefixLength(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// FindBestOption returns the declared option name closest to input
func FindBestOption(input string, names []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, names)
}
