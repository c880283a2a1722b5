package motion

import "math"

// SectionIndex is the section whose page range contains offsetY:
// round(offsetY / viewportHeight). A non-positive height maps to section 0.
func SectionIndex(offsetY, viewportHeight float64) int {
	if viewportHeight <= 0 {
		return 0
	}
	return int(math.Round(offsetY / viewportHeight))
}

// ClampSection limits i to [0, count-1].
func ClampSection(i, count int) int {
	if count <= 0 || i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}

// MaxScroll is the largest offset a page of count sections can scroll to.
func MaxScroll(viewportHeight float64, count int) float64 {
	if count <= 1 || viewportHeight <= 0 {
		return 0
	}
	return float64(count-1) * viewportHeight
}

// ClampScroll limits offsetY to the page range.
func ClampScroll(offsetY, viewportHeight float64, count int) float64 {
	return math.Max(0, math.Min(offsetY, MaxScroll(viewportHeight, count)))
}

// Tracker remembers the current section and reports transitions.
type Tracker struct {
	Current int
	Count   int
}

// Observe recomputes the section for a scroll notification. It returns the new
// section and true only when the current section changed; out of range indices
// are clamped to the last valid section first.
func (t *Tracker) Observe(offsetY, viewportHeight float64) (int, bool) {
	next := ClampSection(SectionIndex(offsetY, viewportHeight), t.Count)
	if next == t.Current {
		return t.Current, false
	}
	t.Current = next
	return next, true
}
