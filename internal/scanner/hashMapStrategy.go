package scanner

type hashMapStrategy struct{}

func (strategy *hashMapStrategy) Scan(input string) Result {
	lastSeen := make(map[byte]int)
	var w window

	for right := 0; right < len(input); right++ {
		unit := input[right]
		// positions left of the window are stale and must not move it back
		if position, seen := lastSeen[unit]; seen && position >= w.left {
			w.left = position + 1
		}
		lastSeen[unit] = right
		w.extend(right)
	}

	return w.best
}
