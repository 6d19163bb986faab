package weft

const chunkSize = 16

type chunk[T any] struct {
	items [chunkSize]T
	next  *chunk[T]
}

// chain is an append-only sequence stored as a singly linked list of
// fixed-size chunks. Pushing never moves an existing element, so pointers
// handed out by push and the cursors stay valid for the chain's lifetime.
type chain[T any] struct {
	head *chunk[T]
	tail *chunk[T]
	len  int
}

func (c *chain[T]) push(v T) *T {
	i := c.len % chunkSize
	if i == 0 {
		ch := &chunk[T]{}
		if c.tail == nil {
			c.head = ch
		} else {
			c.tail.next = ch
		}
		c.tail = ch
	}
	c.tail.items[i] = v
	c.len++
	return &c.tail.items[i]
}

// at returns a pointer to element i, or nil when out of range.
func (c *chain[T]) at(i int) *T {
	if i < 0 || i >= c.len {
		return nil
	}
	ch := c.head
	for ; i >= chunkSize; i -= chunkSize {
		ch = ch.next
	}
	return &ch.items[i]
}

// cursor walks the elements present when it was created. Elements pushed
// afterwards are not visited.
func (c *chain[T]) cursor() cursor[T] {
	return cursor[T]{ch: c.head, end: c.len}
}

type cursor[T any] struct {
	ch  *chunk[T]
	pos int
	end int
}

func (cur *cursor[T]) next() *T {
	if cur.pos >= cur.end {
		return nil
	}
	i := cur.pos % chunkSize
	if i == 0 && cur.pos > 0 {
		cur.ch = cur.ch.next
	}
	cur.pos++
	return &cur.ch.items[i]
}

// limit shortens the walk to at most n elements in total.
func (cur *cursor[T]) limit(n int) {
	cur.end = min(cur.end, n)
}
