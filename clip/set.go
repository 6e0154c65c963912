package clip

const none = -1

// indexSet holds a subset of the vertex indices with O(1) add, remove and
// membership, iterable in insertion order. Like the ring it is intrusive over
// fixed slot arrays. Insertion order matters in two places: the ear set pops
// its first-inserted member, and the ear test walks the reflex set.
type indexSet struct {
	next   []int
	prev   []int
	member []bool
	head   int
	tail   int
}

func newIndexSet(n int) *indexSet {
	s := &indexSet{
		next:   make([]int, n),
		prev:   make([]int, n),
		member: make([]bool, n),
		head:   none,
		tail:   none,
	}
	for i := 0; i < n; i++ {
		s.next[i] = none
		s.prev[i] = none
	}
	return s
}

func (s *indexSet) Contains(i int) bool { return s.member[i] }
func (s *indexSet) Empty() bool         { return s.head == none }

// Add appends i to the iteration order. Adding a member again is a no-op.
func (s *indexSet) Add(i int) {
	if s.member[i] {
		return
	}
	s.member[i] = true
	s.prev[i] = s.tail
	s.next[i] = none
	if s.tail == none {
		s.head = i
	} else {
		s.next[s.tail] = i
	}
	s.tail = i
}

// Remove takes i out of the set. Removing a non-member is a no-op.
func (s *indexSet) Remove(i int) {
	if !s.member[i] {
		return
	}
	s.member[i] = false
	if s.prev[i] == none {
		s.head = s.next[i]
	} else {
		s.next[s.prev[i]] = s.next[i]
	}
	if s.next[i] == none {
		s.tail = s.prev[i]
	} else {
		s.prev[s.next[i]] = s.prev[i]
	}
	s.next[i] = none
	s.prev[i] = none
}

// PopFront removes and returns the first-inserted member. The set must not be
// empty.
func (s *indexSet) PopFront() int {
	i := s.head
	s.Remove(i)
	return i
}

// Each calls fn for every member in insertion order until fn returns false.
// fn must not mutate the set.
func (s *indexSet) Each(fn func(i int) bool) {
	for i := s.head; i != none; i = s.next[i] {
		if !fn(i) {
			return
		}
	}
}
