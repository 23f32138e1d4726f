package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/curator/internal/core/logging"
	"github.com/colonyops/curator/internal/core/review"
)

// sendAdvanceDelay gives the messaging window a beat to open before the
// cursor moves on.
const sendAdvanceDelay = 600 * time.Millisecond

// Backend is everything the TUI needs from the remote review service.
type Backend interface {
	review.Service
	GetSummary(ctx context.Context, campaignID string) (review.SummaryCounts, error)
	GetReviewItems(ctx context.Context, t review.Type, campaignID string) ([]review.Item, error)
	AuditStatus(ctx context.Context) ([]string, error)
	StartAudit(ctx context.Context, campaignID string) (string, error)
}

type summaryMsg struct {
	counts review.SummaryCounts
	err    error
}

type auditStatusMsg struct {
	active []string
	err    error
}

// queueLoadedMsg carries the fetch token so stale responses can be dropped.
type queueLoadedMsg struct {
	typ   review.Type
	token uint64
	items []review.Item
	err   error
}

type actionDoneMsg struct {
	typ    review.Type
	result review.Result
	err    error
}

// immediateDoneMsg reports one of the not-gated actions (star, flag, approve).
// The patch is applied to the cache on the event loop, keyed by post id.
type immediateDoneMsg struct {
	typ    review.Type
	action string
	patch  review.Patch
	err    error
}

type advanceMsg struct {
	typ review.Type
}

type refreshTickMsg struct{}

type toastTickMsg struct{}

// reqCtx tags backend calls with the campaign for log correlation.
func (m *Model) reqCtx() context.Context {
	return logging.WithCampaignID(context.Background(), m.campaignID)
}

func (m *Model) fetchSummaryCmd() tea.Cmd {
	return func() tea.Msg {
		counts, err := m.backend.GetSummary(m.reqCtx(), m.campaignID)
		return summaryMsg{counts: counts, err: err}
	}
}

func (m *Model) fetchAuditStatusCmd() tea.Cmd {
	return func() tea.Msg {
		active, err := m.backend.AuditStatus(m.reqCtx())
		return auditStatusMsg{active: active, err: err}
	}
}

func (m *Model) loadQueueCmd(t review.Type, token uint64) tea.Cmd {
	return func() tea.Msg {
		items, err := m.backend.GetReviewItems(m.reqCtx(), t, m.campaignID)
		return queueLoadedMsg{typ: t, token: token, items: items, err: err}
	}
}

// The action cmds snapshot the item on the event loop before the goroutine
// starts; the dispatcher never reads the store, so navigation during an
// in-flight call cannot redirect the mutation.
func (m *Model) performActionCmd(t review.Type, item review.Item, ed review.EditorState, confirmed bool) tea.Cmd {
	return func() tea.Msg {
		res, err := m.dispatcher.PerformAction(m.reqCtx(), t, item, ed, confirmed)
		return actionDoneMsg{typ: t, result: res, err: err}
	}
}

func (m *Model) setRatingCmd(t review.Type, item review.Item, rating int) tea.Cmd {
	return func() tea.Msg {
		p, err := m.dispatcher.SetRating(m.reqCtx(), item, rating)
		return immediateDoneMsg{typ: t, action: "rating", patch: p, err: err}
	}
}

func (m *Model) setFlagCmd(t review.Type, item review.Item, flag string) tea.Cmd {
	return func() tea.Msg {
		p, err := m.dispatcher.SetFlag(m.reqCtx(), item, flag)
		return immediateDoneMsg{typ: t, action: "flag", patch: p, err: err}
	}
}

func (m *Model) approveCmd(t review.Type, item review.Item) tea.Cmd {
	return func() tea.Msg {
		p, err := m.dispatcher.Approve(m.reqCtx(), item)
		return immediateDoneMsg{typ: t, action: "approve", patch: p, err: err}
	}
}

func scheduleAdvance(t review.Type) tea.Cmd {
	return tea.Tick(sendAdvanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{typ: t}
	})
}

// scheduleRefreshTick arms the periodic summary/audit refresh. The previous
// tick is implicitly superseded: ticks are only rescheduled from the handler.
func scheduleRefreshTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}
