package scanner

const alphabetSize = 256

// arrayStrategy replaces the last-seen map with a table indexed by unit code.
// Units are bytes, so the table covers every possible input.
type arrayStrategy struct{}

func (strategy *arrayStrategy) Scan(input string) Result {
	var lastSeen [alphabetSize]int
	for i := range lastSeen {
		lastSeen[i] = -1
	}
	var w window

	for right := 0; right < len(input); right++ {
		unit := input[right]
		if lastSeen[unit] >= w.left {
			w.left = lastSeen[unit] + 1
		}
		lastSeen[unit] = right
		w.extend(right)
	}

	return w.best
}
