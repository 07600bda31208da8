package scanner

import "github.com/muonsoft/runscan/set"

// AllLongestRuns returns every duplicate-free window of maximal length, left
// to right. Empty input yields no windows.
func AllLongestRuns(input string) []Result {
	lastSeen := make(map[byte]int)
	left := 0
	var runs []Result

	for right := 0; right < len(input); right++ {
		unit := input[right]
		if position, seen := lastSeen[unit]; seen && position >= left {
			left = position + 1
		}
		lastSeen[unit] = right

		current := Result{Length: right - left + 1, Start: left, End: right + 1}
		switch {
		case len(runs) == 0 || current.Length > runs[0].Length:
			runs = append(runs[:0], current)
		case current.Length == runs[0].Length:
			runs = append(runs, current)
		}
	}

	return runs
}

// IsUniqueRun reports whether no unit occurs twice in s.
func IsUniqueRun(s string) bool {
	seen := set.NewHashSet[byte]()
	for i := 0; i < len(s); i++ {
		if !seen.Add(s[i]) {
			return false
		}
	}

	return true
}

// distinctUnits counts the different units of s.
func distinctUnits(s string) int {
	units := set.NewHashSet[byte]()
	for i := 0; i < len(s); i++ {
		units.Add(s[i])
	}

	return units.Len()
}
