package structure

import "github.com/tsawler/strata/model"

// FontStats tallies text volume per font size. It is the accumulator of the
// document-wide gather step: each page produces its own FontStats during the
// scatter phase and a single owner merges them in page order afterwards.
type FontStats struct {
	chars map[float64]int
	order []float64 // sizes in first-seen order, for deterministic ties
	max   float64
	total int
}

// NewFontStats creates an empty tally.
func NewFontStats() *FontStats {
	return &FontStats{chars: make(map[float64]int)}
}

// Add tallies one token. Sizes are already rounded to one decimal by the
// token constructor, which keeps the map keys canonical.
func (s *FontStats) Add(tok model.Token) {
	size := model.Round1(tok.FontSize)
	if _, seen := s.chars[size]; !seen {
		s.order = append(s.order, size)
	}
	n := tok.TextLen()
	s.chars[size] += n
	s.total += n
	if size > s.max {
		s.max = size
	}
}

// Merge folds another tally into this one. Character counts commute; the
// first-seen order of the receiver takes precedence, so merging page tallies
// in page order reproduces the single-pass iteration order.
func (s *FontStats) Merge(other *FontStats) {
	if other == nil {
		return
	}
	for _, size := range other.order {
		if _, seen := s.chars[size]; !seen {
			s.order = append(s.order, size)
		}
		s.chars[size] += other.chars[size]
	}
	s.total += other.total
	if other.max > s.max {
		s.max = other.max
	}
}

// BodyFontSize returns the font size covering the greatest total character
// count, with ties broken by the first size encountered. Zero when no tokens
// were tallied.
func (s *FontStats) BodyFontSize() float64 {
	best := 0.0
	bestCount := 0
	for _, size := range s.order {
		if s.chars[size] > bestCount {
			best = size
			bestCount = s.chars[size]
		}
	}
	return best
}

// MaxFontSize returns the largest font size tallied.
func (s *FontStats) MaxFontSize() float64 {
	return s.max
}

// TotalChars returns the total character count tallied.
func (s *FontStats) TotalChars() int {
	return s.total
}
