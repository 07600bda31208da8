// Package scanner finds the longest contiguous run of a string that contains
// no repeated unit. A unit is a byte, as produced by indexing a Go string.
package scanner

// Strategy is one interchangeable way of scanning an input. Every strategy
// returns the same Result for the same input; implementations hold no state
// between calls and are safe for concurrent use.
type Strategy interface {
	Scan(input string) Result
}

// Result describes the first longest duplicate-free window as the half-open
// range [Start, End) of the scanned input.
type Result struct {
	Length int
	Start  int
	End    int
}

// Span returns the window bytes of the input the result was computed for.
func (result Result) Span(input string) string {
	return input[result.Start:result.End]
}

// Length returns the length of the longest duplicate-free run.
func Length(strategy Strategy, input string) int {
	return strategy.Scan(input).Length
}

// LongestUniqueRun returns the length of the longest duplicate-free run and
// the run itself. When several runs share the maximal length the leftmost one
// is returned.
func LongestUniqueRun(strategy Strategy, input string) (int, string) {
	result := strategy.Scan(input)

	return result.Length, result.Span(input)
}

// window is the best-so-far record shared by the loop based strategies.
type window struct {
	left int
	best Result
}

// extend records the window ending at right and keeps the first maximal one.
func (w *window) extend(right int) {
	if length := right - w.left + 1; length > w.best.Length {
		w.best = Result{Length: length, Start: w.left, End: right + 1}
	}
}
