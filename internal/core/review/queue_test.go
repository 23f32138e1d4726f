package review

import "testing"

func items(ids ...string) []Item {
	out := make([]Item, len(ids))
	for i, id := range ids {
		out[i] = Item{PostID: id}
	}
	return out
}

func TestStoreReplaceResetsCursor(t *testing.T) {
	s := NewStore()
	s.Replace(TypeIssues, items("a", "b", "c"))
	s.Advance(TypeIssues)
	s.Advance(TypeIssues)

	if got := s.Index(TypeIssues); got != 2 {
		t.Fatalf("cursor = %d, want 2", got)
	}

	s.Replace(TypeIssues, items("x", "y"))
	if got := s.Index(TypeIssues); got != 0 {
		t.Errorf("cursor after replace = %d, want 0", got)
	}
	cur, ok := s.Current(TypeIssues)
	if !ok || cur.PostID != "x" {
		t.Errorf("current = %+v ok=%v, want first fetched item", cur, ok)
	}
}

func TestStoreCurrent(t *testing.T) {
	s := NewStore()

	if _, ok := s.Current(TypeCombined); ok {
		t.Error("expected no current item for unloaded queue")
	}

	s.Replace(TypeCombined, nil)
	if _, ok := s.Current(TypeCombined); ok {
		t.Error("expected no current item for empty queue")
	}
	if !s.Loaded(TypeCombined) {
		t.Error("empty queue should still count as loaded")
	}

	s.Replace(TypeCombined, items("a"))
	cur, ok := s.Current(TypeCombined)
	if !ok || cur.PostID != "a" {
		t.Errorf("current = %+v ok=%v, want item a", cur, ok)
	}
}

func TestNavigatorBounds(t *testing.T) {
	s := NewStore()
	s.Replace(TypeManualReview, items("a", "b", "c"))

	if s.Retreat(TypeManualReview) {
		t.Error("retreat at cursor 0 should be a no-op")
	}

	// Exactly N-1 advances reach the terminal index.
	moves := 0
	for s.Advance(TypeManualReview) {
		moves++
	}
	if moves != 2 {
		t.Errorf("advanced %d times, want 2", moves)
	}
	if !s.AtEnd(TypeManualReview) {
		t.Error("expected terminal state after advancing through queue")
	}
	if s.Advance(TypeManualReview) {
		t.Error("advance at last index should be a no-op")
	}

	if !s.Retreat(TypeManualReview) {
		t.Error("retreat from terminal index should move")
	}
	if got := s.Index(TypeManualReview); got != 1 {
		t.Errorf("cursor = %d, want 1", got)
	}
}

func TestNavigatorIndependentPerType(t *testing.T) {
	s := NewStore()
	s.Replace(TypeIssues, items("a", "b"))
	s.Replace(TypeNotUploaded, items("x", "y", "z"))

	s.Advance(TypeIssues)

	if got := s.Index(TypeIssues); got != 1 {
		t.Errorf("issues cursor = %d, want 1", got)
	}
	if got := s.Index(TypeNotUploaded); got != 0 {
		t.Errorf("not_uploaded cursor = %d, want 0", got)
	}
}

func TestMutateByID(t *testing.T) {
	s := NewStore()
	s.Replace(TypeCombined, items("a", "b"))

	// The cursor sits on "b" but the mutation targets "a".
	s.Advance(TypeCombined)

	if !s.MutateByID(TypeCombined, "a", func(it *Item) {
		it.CurrentRating = 4
		it.Reviewed = true
	}) {
		t.Fatal("MutateByID = false for an id in the queue")
	}

	cur, _ := s.Current(TypeCombined)
	if cur.CurrentRating != 0 || cur.Reviewed {
		t.Errorf("mutation leaked to cursor item: %+v", cur)
	}

	s.Retreat(TypeCombined)
	cur, _ = s.Current(TypeCombined)
	if cur.CurrentRating != 4 || !cur.Reviewed {
		t.Errorf("mutation not applied to target item: %+v", cur)
	}

	if s.MutateByID(TypeCombined, "gone", func(it *Item) { it.Reviewed = true }) {
		t.Error("MutateByID = true for an unknown id")
	}
	if s.MutateByID(TypeCombined, "", func(it *Item) { it.Reviewed = true }) {
		t.Error("MutateByID = true for an empty id")
	}
	if s.MutateByID(TypeIssues, "a", func(it *Item) {}) {
		t.Error("MutateByID = true for an unloaded queue")
	}
}
