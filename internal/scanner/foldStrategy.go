package scanner

// foldUnits applies step to every unit of input from left to right, threading
// the accumulated state through.
func foldUnits[S any](input string, initial S, step func(state S, position int, unit byte) S) S {
	state := initial
	for position := 0; position < len(input); position++ {
		state = step(state, position, input[position])
	}

	return state
}

type foldState struct {
	left     int
	lastSeen map[byte]int
	best     Result
}

func (state foldState) advance(unit byte) (left int) {
	left = state.left
	if seenAt, seen := state.lastSeen[unit]; seen && seenAt >= left {
		left = seenAt + 1
	}

	return left
}

func (state foldState) bestWith(left int, position int) Result {
	if length := position - left + 1; length > state.best.Length {
		return Result{Length: length, Start: left, End: position + 1}
	}

	return state.best
}

// foldStrategy owns its last-seen map for the duration of one fold, so the
// step updates it in place.
type foldStrategy struct{}

func (strategy *foldStrategy) Scan(input string) Result {
	initial := foldState{lastSeen: make(map[byte]int)}

	return foldUnits(input, initial, func(state foldState, position int, unit byte) foldState {
		left := state.advance(unit)
		state.lastSeen[unit] = position

		return foldState{
			left:     left,
			lastSeen: state.lastSeen,
			best:     state.bestWith(left, position),
		}
	}).best
}

// composedStrategy never mutates a state it was given: every step returns a
// fresh state with its own copy of the last-seen map.
type composedStrategy struct{}

func (strategy *composedStrategy) Scan(input string) Result {
	return foldUnits(input, foldState{}, updateWindow).best
}

func updateWindow(state foldState, position int, unit byte) foldState {
	left := state.advance(unit)

	lastSeen := make(map[byte]int, len(state.lastSeen)+1)
	for seenUnit, seenAt := range state.lastSeen {
		lastSeen[seenUnit] = seenAt
	}
	lastSeen[unit] = position

	return foldState{
		left:     left,
		lastSeen: lastSeen,
		best:     state.bestWith(left, position),
	}
}
