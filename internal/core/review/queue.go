package review

// Queue is an ordered sequence of review items plus a cursor.
// Queues are populated wholesale on fetch and live for the session only.
type Queue struct {
	items  []Item
	cursor int
}

// Store holds one queue per review type.
type Store struct {
	queues map[Type]*Queue
}

// NewStore creates an empty queue store.
func NewStore() *Store {
	return &Store{queues: make(map[Type]*Queue)}
}

// Replace swaps in a freshly fetched item list for the given review type and
// resets its cursor to zero. Any prior contents are discarded.
func (s *Store) Replace(t Type, items []Item) {
	s.queues[t] = &Queue{items: items}
}

// Loaded reports whether a queue has been fetched for the given type.
func (s *Store) Loaded(t Type) bool {
	_, ok := s.queues[t]
	return ok
}

// Len returns the number of items in the queue for the given type.
func (s *Store) Len(t Type) int {
	q, ok := s.queues[t]
	if !ok {
		return 0
	}
	return len(q.items)
}

// Index returns the cursor position for the given type.
func (s *Store) Index(t Type) int {
	q, ok := s.queues[t]
	if !ok {
		return 0
	}
	return q.cursor
}

// Current returns the item at the active cursor. The second return is false
// when the queue is empty, unloaded, or the cursor is out of range.
func (s *Store) Current(t Type) (Item, bool) {
	q, ok := s.queues[t]
	if !ok || q.cursor < 0 || q.cursor >= len(q.items) {
		return Item{}, false
	}
	return q.items[q.cursor], true
}

// MutateByID applies fn to the cached item with the given post id, wherever
// the cursor happens to be. Used after a successful remote save so the
// in-memory copy reflects server state without a full reload. Returns false
// when the id is not in the queue (e.g. it was replaced by a reload).
func (s *Store) MutateByID(t Type, postID string, fn func(*Item)) bool {
	q, ok := s.queues[t]
	if !ok || postID == "" {
		return false
	}
	for i := range q.items {
		if q.items[i].PostID == postID {
			fn(&q.items[i])
			return true
		}
	}
	return false
}

// Advance moves the cursor forward one item. At the last index it is a no-op;
// that is the terminal "all items reviewed" state. Returns true if it moved.
func (s *Store) Advance(t Type) bool {
	q, ok := s.queues[t]
	if !ok || q.cursor >= len(q.items)-1 {
		return false
	}
	q.cursor++
	return true
}

// Retreat moves the cursor back one item, or does nothing at index zero.
// Returns true if it moved.
func (s *Store) Retreat(t Type) bool {
	q, ok := s.queues[t]
	if !ok || q.cursor <= 0 {
		return false
	}
	q.cursor--
	return true
}

// AtStart reports whether the cursor sits on the first item.
func (s *Store) AtStart(t Type) bool {
	return s.Index(t) <= 0
}

// AtEnd reports whether the cursor sits on the last item (or the queue is
// empty). The forward control shows its finished affordance here.
func (s *Store) AtEnd(t Type) bool {
	return s.Index(t) >= s.Len(t)-1
}
