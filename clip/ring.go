package clip

// ring is the cyclic ordering over the currently active vertex indices. It is
// an intrusive doubly-linked list over a fixed slot array, so neighbor
// queries and removal are O(1) and clipping never allocates.
//
// There is no membership checking: querying an index that has already been
// removed is invalid, and the clip loop guarantees by construction that it
// never does so.
type ring struct {
	next []int
	prev []int
	size int
}

func newRing(n int) *ring {
	r := &ring{
		next: make([]int, n),
		prev: make([]int, n),
		size: n,
	}
	for i := 0; i < n; i++ {
		r.next[i] = (i + 1) % n
		r.prev[i] = (i + n - 1) % n
	}
	return r
}

func (r *ring) Next(i int) int { return r.next[i] }
func (r *ring) Prev(i int) int { return r.prev[i] }
func (r *ring) Len() int       { return r.size }

// Remove unlinks i from the cycle. Next and Prev for its former neighbors
// skip it from then on.
func (r *ring) Remove(i int) {
	r.next[r.prev[i]] = r.next[i]
	r.prev[r.next[i]] = r.prev[i]
	r.size--
}
