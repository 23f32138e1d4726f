package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/curator/internal/core/config"
	"github.com/colonyops/curator/internal/core/notify"
	"github.com/colonyops/curator/internal/core/review"
	"github.com/colonyops/curator/pkg/tuitest"
)

type fakeBackend struct {
	items   map[review.Type][]review.Item
	itemErr error
}

func (f *fakeBackend) GetSummary(ctx context.Context, campaignID string) (review.SummaryCounts, error) {
	return review.SummaryCounts{Influencers: 3}, nil
}

func (f *fakeBackend) GetReviewItems(ctx context.Context, t review.Type, campaignID string) ([]review.Item, error) {
	if f.itemErr != nil {
		return nil, f.itemErr
	}
	return f.items[t], nil
}

func (f *fakeBackend) AuditStatus(ctx context.Context) ([]string, error) { return nil, nil }
func (f *fakeBackend) StartAudit(ctx context.Context, campaignID string) (string, error) {
	return "started", nil
}

func (f *fakeBackend) SendMessage(ctx context.Context, p review.SendParams) (string, error) {
	return "Message sent", nil
}
func (f *fakeBackend) SaveComment(ctx context.Context, postID, comment string) error   { return nil }
func (f *fakeBackend) SaveRating(ctx context.Context, postID string, rating int) error { return nil }
func (f *fakeBackend) SaveFlag(ctx context.Context, postID, flag string) error         { return nil }
func (f *fakeBackend) MarkReviewed(ctx context.Context, postID string, rev bool) error { return nil }
func (f *fakeBackend) ApprovePost(ctx context.Context, postID string) error            { return nil }
func (f *fakeBackend) LogMessage(ctx context.Context, p review.SendParams) error       { return nil }

func newTestModel(backend *fakeBackend) *Model {
	cfg := config.DefaultConfig()
	return New(&cfg, backend, zerolog.Nop())
}

func TestModelOpensQueueFromSummary(t *testing.T) {
	m := newTestModel(&fakeBackend{})

	_, cmd := m.Update(tuitest.KeyRunes("2"))

	assert.Equal(t, stateReview, m.state)
	assert.Equal(t, review.TypeNotUploaded, m.activeType)
	assert.True(t, m.loading[review.TypeNotUploaded])
	assert.Equal(t, uint64(1), m.tokens[review.TypeNotUploaded])
	require.NotNil(t, cmd)
}

func TestModelAppliesMatchingQueueResponse(t *testing.T) {
	m := newTestModel(&fakeBackend{})
	m.Update(tuitest.KeyRunes("3"))

	items := []review.Item{
		{PostID: "p1", InfluencerName: "Jane Doe", SuggestedMessage: "Hi Jane"},
		{PostID: "p2", InfluencerName: "Sam Cole"},
	}
	m.Update(queueLoadedMsg{typ: review.TypeManualReview, token: 1, items: items})

	assert.False(t, m.loading[review.TypeManualReview])
	assert.Equal(t, 2, m.store.Len(review.TypeManualReview))
	got, ok := m.store.Current(review.TypeManualReview)
	require.True(t, ok)
	assert.Equal(t, "p1", got.PostID)
	assert.Equal(t, "Hi Jane", m.msgInput.Value())
}

func TestModelDropsStaleQueueResponse(t *testing.T) {
	m := newTestModel(&fakeBackend{})
	m.Update(tuitest.KeyRunes("1"))

	// A second load supersedes the first.
	m.startQueueLoad(review.TypeIssues)
	assert.Equal(t, uint64(2), m.tokens[review.TypeIssues])

	stale := []review.Item{{PostID: "old"}}
	m.Update(queueLoadedMsg{typ: review.TypeIssues, token: 1, items: stale})
	assert.False(t, m.store.Loaded(review.TypeIssues))
	assert.True(t, m.loading[review.TypeIssues])

	fresh := []review.Item{{PostID: "new"}}
	m.Update(queueLoadedMsg{typ: review.TypeIssues, token: 2, items: fresh})
	got, ok := m.store.Current(review.TypeIssues)
	require.True(t, ok)
	assert.Equal(t, "new", got.PostID)
}

func TestModelQueueLoadFailureReturnsToSummary(t *testing.T) {
	m := newTestModel(&fakeBackend{})
	m.Update(tuitest.KeyRunes("1"))
	assert.Equal(t, stateReview, m.state)

	m.Update(queueLoadedMsg{typ: review.TypeIssues, token: 1, err: errors.New("boom")})

	assert.Equal(t, stateSummary, m.state, "a failed load drops back to the summary")
	assert.True(t, m.unavailable[review.TypeIssues])
	assert.False(t, m.store.Loaded(review.TypeIssues))
	assert.True(t, m.toasts.HasToasts())
}

func TestModelBackgroundQueueFailureKeepsScreen(t *testing.T) {
	m := newTestModel(&fakeBackend{})
	m.Update(tuitest.KeyRunes("1"))
	m.Update(queueLoadedMsg{typ: review.TypeIssues, token: 1, items: []review.Item{{PostID: "p1"}}})

	// A failure for a queue the reviewer is not looking at only toasts.
	m.startQueueLoad(review.TypeCombined)
	m.Update(queueLoadedMsg{typ: review.TypeCombined, token: 1, err: errors.New("boom")})

	assert.Equal(t, stateReview, m.state)
	assert.True(t, m.unavailable[review.TypeCombined])
}

func TestModelAdvanceAfterSend(t *testing.T) {
	m := newTestModel(&fakeBackend{})
	m.Update(tuitest.KeyRunes("1"))
	m.Update(queueLoadedMsg{typ: review.TypeIssues, token: 1, items: []review.Item{
		{PostID: "p1", HasIssues: true},
		{PostID: "p2", HasIssues: true},
	}})

	m.Update(actionDoneMsg{typ: review.TypeIssues, result: review.Result{
		Kind: review.ActionSendMessage, Advance: true, Notice: "Message sent",
	}})
	// Cursor holds until the scheduled advance lands.
	assert.Equal(t, 0, m.store.Index(review.TypeIssues))

	m.Update(advanceMsg{typ: review.TypeIssues})
	assert.Equal(t, 1, m.store.Index(review.TypeIssues))
}

func TestModelNavigationWaitsForInflightAction(t *testing.T) {
	m := newTestModel(&fakeBackend{})
	m.Update(tuitest.KeyRunes("3"))
	m.Update(queueLoadedMsg{typ: review.TypeManualReview, token: 1, items: []review.Item{
		{PostID: "p1"},
		{PostID: "p2"},
	}})
	m.commentInput.SetValue("looks good")

	_, cmd := m.Update(tuitest.KeyEnter())
	require.NotNil(t, cmd)
	assert.True(t, m.actionBusy)
	assert.Equal(t, "p1", m.pendingItem.PostID)

	// Nudging the cursor while the save is in flight is a no-op, so the
	// reviewer is still looking at the item the result belongs to.
	m.Update(tuitest.KeyRunes("n"))
	assert.Equal(t, 0, m.store.Index(review.TypeManualReview))

	reviewed := true
	m.Update(actionDoneMsg{typ: review.TypeManualReview, result: review.Result{
		Kind:    review.ActionSaveFeedback,
		Advance: true,
		Notice:  "Feedback saved",
		Patch:   review.Patch{PostID: "p1", Reviewed: &reviewed},
	}})
	assert.False(t, m.actionBusy)

	cur, ok := m.store.Current(review.TypeManualReview)
	require.True(t, ok)
	assert.Equal(t, "p1", cur.PostID)
	assert.True(t, cur.Reviewed)
}

func TestModelPatchTargetsActedItemNotCursor(t *testing.T) {
	m := newTestModel(&fakeBackend{})
	m.Update(tuitest.KeyRunes("4"))
	m.Update(queueLoadedMsg{typ: review.TypeCombined, token: 1, items: []review.Item{
		{PostID: "p1"},
		{PostID: "p2"},
	}})
	m.Update(tuitest.KeyRunes("n"))

	// The rating was accepted for p1; by now the cursor sits on p2.
	rating := 5
	m.Update(immediateDoneMsg{typ: review.TypeCombined, action: "rating",
		patch: review.Patch{PostID: "p1", Rating: &rating}})

	cur, ok := m.store.Current(review.TypeCombined)
	require.True(t, ok)
	assert.Equal(t, "p2", cur.PostID)
	assert.Equal(t, 0, cur.CurrentRating, "cursor item must not absorb p1's rating")

	m.store.Retreat(review.TypeCombined)
	cur, _ = m.store.Current(review.TypeCombined)
	assert.Equal(t, 5, cur.CurrentRating)
}

func TestModelConfirmFlow(t *testing.T) {
	m := newTestModel(&fakeBackend{})
	m.Update(tuitest.KeyRunes("3"))
	m.Update(queueLoadedMsg{typ: review.TypeManualReview, token: 1, items: []review.Item{
		{PostID: "p1", Reviewed: true, ApprovedStatus: review.ApprovedYes, SuggestedMessage: "orig"},
	}})

	m.Update(actionDoneMsg{typ: review.TypeManualReview, result: review.Result{
		Kind: review.ActionSaveFeedback, NeedsConfirm: true,
	}})
	assert.Equal(t, stateConfirming, m.state)

	// Declining reverts the editors and returns to the review screen.
	m.commentInput.SetValue("half typed")
	m.Update(tuitest.KeyRunes("n"))
	assert.Equal(t, stateReview, m.state)
	assert.Equal(t, "", m.commentInput.Value())
}

func TestModelConfirmAcceptRetries(t *testing.T) {
	m := newTestModel(&fakeBackend{})
	m.Update(tuitest.KeyRunes("3"))
	m.Update(queueLoadedMsg{typ: review.TypeManualReview, token: 1, items: []review.Item{
		{PostID: "p1", Reviewed: true, ApprovedStatus: review.ApprovedYes},
	}})
	m.Update(actionDoneMsg{typ: review.TypeManualReview, result: review.Result{
		Kind: review.ActionSaveFeedback, NeedsConfirm: true,
	}})

	_, cmd := m.Update(tuitest.KeyRunes("y"))
	assert.Equal(t, stateReview, m.state)
	assert.True(t, m.actionBusy)
	require.NotNil(t, cmd)
}

func TestModelActionErrorPublishesToast(t *testing.T) {
	m := newTestModel(&fakeBackend{})
	m.Update(tuitest.KeyRunes("1"))
	m.Update(queueLoadedMsg{typ: review.TypeIssues, token: 1, items: []review.Item{{PostID: "p1"}}})

	m.Update(actionDoneMsg{typ: review.TypeIssues, err: errors.New("remote down")})

	assert.False(t, m.actionBusy)
	hist := m.History()
	require.NotEmpty(t, hist)
	assert.Equal(t, notify.LevelError, hist[0].Level)
	assert.Contains(t, hist[0].Message, "remote down")
}

func TestModelEscReturnsToSummary(t *testing.T) {
	m := newTestModel(&fakeBackend{})
	m.Update(tuitest.KeyRunes("4"))
	assert.Equal(t, stateReview, m.state)

	_, cmd := m.Update(tuitest.KeyEsc())
	assert.Equal(t, stateSummary, m.state)
	require.NotNil(t, cmd)
}
