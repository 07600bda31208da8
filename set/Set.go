package set

type HashSet[T comparable] struct {
	m map[T]struct{}
}

func NewHashSet[T comparable]() *HashSet[T] {
	return &HashSet[T]{m: make(map[T]struct{})}
}

// Add reports whether e was absent before the call.
func (set *HashSet[T]) Add(e T) bool {
	if _, found := set.m[e]; found {
		return false
	}
	set.m[e] = struct{}{}
	return true
}

func (set *HashSet[T]) Len() int {
	return len(set.m)
}
