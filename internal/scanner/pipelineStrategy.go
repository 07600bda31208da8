package scanner

// pipelineStrategy short-circuits empty input and stops as soon as the rest
// of the input cannot produce a strictly longer window.
type pipelineStrategy struct{}

func (strategy *pipelineStrategy) Scan(input string) Result {
	if len(input) == 0 {
		return Result{}
	}

	lastSeen := make(map[byte]int)
	var w window

	for right := 0; right < len(input); right++ {
		unit := input[right]
		if position, seen := lastSeen[unit]; seen && position >= w.left {
			w.left = position + 1
		}
		lastSeen[unit] = right
		w.extend(right)

		// left never decreases, so no later window is longer than len(input)-left
		if w.best.Length >= len(input)-w.left {
			break
		}
	}

	return w.best
}
