package dial

// bucket is a simple FIFO queue of vertex ids, backed by a slice with
// a moving head index rather than a ring buffer — Dial never pops
// from the middle and clear() is called far more often than the
// slice grows large enough for the wasted prefix to matter.
type bucket struct {
	items []int
	head  int
}

func (b *bucket) push(v int) {
	b.items = append(b.items, v)
}

func (b *bucket) empty() bool {
	return b.head >= len(b.items)
}

func (b *bucket) front() int {
	return b.items[b.head]
}

func (b *bucket) popFront() int {
	v := b.items[b.head]
	b.head++
	return v
}

func (b *bucket) clear() {
	b.items = b.items[:0]
	b.head = 0
}
