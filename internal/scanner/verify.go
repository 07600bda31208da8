package scanner

import "fmt"

const (
	ReasonLength    = "length"
	ReasonSpan      = "span"
	ReasonDiverging = "diverging"
)

// Mismatch is a strategy result that disagrees with the reference scan.
type Mismatch struct {
	Strategy string
	Input    string
	Reason   string
	Expected Result
	Actual   Result
}

func (mismatch Mismatch) String() string {
	return fmt.Sprintf(
		"%s: %s mismatch on %q: expected %+v, got %+v",
		mismatch.Strategy, mismatch.Reason, mismatch.Input, mismatch.Expected, mismatch.Actual,
	)
}

// Verifier cross-checks strategies against the canonical strategy and an
// exhaustive quadratic search.
type Verifier struct {
	canonical  Strategy
	strategies []namedStrategy
}

func NewVerifier(names ...string) (*Verifier, error) {
	if len(names) == 0 {
		names = Names()
	}

	verifier := &Verifier{canonical: &hashMapStrategy{}}
	for _, name := range names {
		strategy, err := New(name)
		if err != nil {
			return nil, err
		}
		verifier.strategies = append(verifier.strategies, namedStrategy{name: name, strategy: strategy})
	}

	return verifier, nil
}

func (verifier *Verifier) Check(input string) []Mismatch {
	reference := bruteForce(input)
	canonical := verifier.canonical.Scan(input)
	var mismatches []Mismatch

	for _, named := range verifier.strategies {
		actual := named.strategy.Scan(input)
		mismatch := Mismatch{Strategy: named.name, Input: input, Actual: actual}

		switch {
		case actual.Length != reference.Length:
			mismatch.Reason = ReasonLength
			mismatch.Expected = reference
		case !isGenuineSpan(input, actual):
			mismatch.Reason = ReasonSpan
			mismatch.Expected = reference
		case actual != canonical:
			mismatch.Reason = ReasonDiverging
			mismatch.Expected = canonical
		default:
			continue
		}

		mismatches = append(mismatches, mismatch)
	}

	return mismatches
}

func isGenuineSpan(input string, result Result) bool {
	if result.Start < 0 || result.End > len(input) || result.Start > result.End {
		return false
	}
	if result.End-result.Start != result.Length {
		return false
	}

	return distinctUnits(result.Span(input)) == result.Length
}

// bruteForce tries every start position and keeps the first longest window.
func bruteForce(input string) Result {
	var best Result

	for start := 0; start < len(input); start++ {
		var seen [alphabetSize]bool
		end := start
		for end < len(input) && !seen[input[end]] {
			seen[input[end]] = true
			end++
		}
		if end-start > best.Length {
			best = Result{Length: end - start, Start: start, End: end}
		}
	}

	return best
}
