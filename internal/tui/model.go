package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/curator/internal/core/config"
	"github.com/colonyops/curator/internal/core/messaging"
	corenotify "github.com/colonyops/curator/internal/core/notify"
	"github.com/colonyops/curator/internal/core/review"
	"github.com/colonyops/curator/internal/core/styles"
	"github.com/colonyops/curator/internal/tui/components"
	tuinotify "github.com/colonyops/curator/internal/tui/notify"
)

// uiState is the current top-level mode of the TUI.
type uiState int

const (
	stateSummary uiState = iota
	stateReview
	stateConfirming
	stateHelp
)

// editorFocus tracks which text editor, if any, owns keyboard input.
type editorFocus int

const (
	focusNone editorFocus = iota
	focusMessage
	focusComment
)

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Model is the main Bubble Tea model for the review dashboard.
type Model struct {
	cfg        *config.Config
	backend    Backend
	dispatcher *review.Dispatcher
	store      *review.Store
	bus        *tuinotify.Bus
	toasts     *ToastController
	keys       keyMap
	log        zerolog.Logger

	state      uiState
	prevState  uiState
	activeType review.Type
	focus      editorFocus
	width      int
	height     int
	quitting   bool

	// Summary view data.
	summary       review.SummaryCounts
	summaryLoaded bool
	summaryErr    error
	activeAudits  []string
	campaignID    string

	// Queue load bookkeeping. tokens fences stale responses: only the
	// reply matching the latest token for a type is applied.
	loading     map[review.Type]bool
	tokens      map[review.Type]uint64
	unavailable map[review.Type]bool

	// Review editors.
	msgInput     textarea.Model
	commentInput textarea.Model

	// actionBusy blocks a second submit, and navigation, while one action is
	// in flight. pendingItem is the snapshot the in-flight call operates on;
	// its result patches the cache by post id, never by cursor.
	actionBusy  bool
	pendingItem review.Item
	pendingEd   review.EditorState

	spinner spinner.Model
	confirm components.ConfirmModal
	helpMD  string
}

// New builds the dashboard model over a ready backend.
func New(cfg *config.Config, backend Backend, log zerolog.Logger) *Model {
	store := review.NewStore()
	session := messaging.NewSession(nil, cfg.WindowTTL)
	dispatcher := review.NewDispatcher(backend, systemClipboard{}, session, cfg.CountryPrefix, log)

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.HeadingStyle),
	)

	msgInput := textarea.New()
	msgInput.Placeholder = "Message to the influencer"
	msgInput.ShowLineNumbers = false
	msgInput.Blur()

	commentInput := textarea.New()
	commentInput.Placeholder = "Reviewer comment"
	commentInput.ShowLineNumbers = false
	commentInput.Blur()

	m := &Model{
		cfg:          cfg,
		backend:      backend,
		dispatcher:   dispatcher,
		store:        store,
		bus:          tuinotify.NewBus(),
		toasts:       NewToastController(),
		keys:         defaultKeyMap(),
		log:          log,
		campaignID:   cfg.CampaignID,
		loading:      make(map[review.Type]bool),
		tokens:       make(map[review.Type]uint64),
		unavailable:  make(map[review.Type]bool),
		msgInput:     msgInput,
		commentInput: commentInput,
		spinner:      sp,
	}
	m.bus.Subscribe(m.toasts.Push)
	return m
}

// Bus exposes the notification bus, mainly so startup warnings can be
// published before the program runs.
func (m *Model) Bus() *tuinotify.Bus { return m.bus }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.fetchSummaryCmd(),
		m.fetchAuditStatusCmd(),
		scheduleRefreshTick(m.cfg.RefreshInterval),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.msgInput.SetWidth(min(msg.Width-8, 76))
		m.commentInput.SetWidth(min(msg.Width-8, 76))
		m.msgInput.SetHeight(6)
		m.commentInput.SetHeight(3)

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg)...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case summaryMsg:
		if msg.err != nil {
			m.summaryErr = msg.err
			m.bus.Errorf("summary refresh failed: %v", msg.err)
		} else {
			m.summary = msg.counts
			m.summaryLoaded = true
			m.summaryErr = nil
		}

	case auditStatusMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("audit status poll failed")
		} else {
			m.activeAudits = msg.active
		}

	case queueLoadedMsg:
		cmds = append(cmds, m.handleQueueLoaded(msg)...)

	case actionDoneMsg:
		cmds = append(cmds, m.handleActionDone(msg)...)

	case immediateDoneMsg:
		if msg.err != nil {
			m.bus.Errorf("%s failed: %v", msg.action, msg.err)
		} else {
			m.applyPatch(msg.typ, msg.patch)
		}

	case advanceMsg:
		if msg.typ == m.activeType && m.state == stateReview {
			m.store.Advance(msg.typ)
			m.syncEditors()
		}

	case refreshTickMsg:
		cmds = append(cmds,
			m.fetchSummaryCmd(),
			m.fetchAuditStatusCmd(),
			scheduleRefreshTick(m.cfg.RefreshInterval),
		)

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			cmds = append(cmds, scheduleToastTick())
		} else {
			m.toasts.SetTicking(false)
		}
	}

	// A publish from any branch above may have pushed the first toast.
	if m.toasts.HasToasts() && !m.toasts.Ticking() {
		m.toasts.SetTicking(true)
		cmds = append(cmds, scheduleToastTick())
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) []tea.Cmd {
	// An in-flight confirm modal owns all input.
	if m.state == stateConfirming {
		return m.handleConfirmKey(msg)
	}

	if m.state == stateHelp {
		m.state = m.prevState
		return nil
	}

	if m.focus != focusNone {
		return m.handleEditorKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return []tea.Cmd{tea.Quit}

	case key.Matches(msg, m.keys.Help):
		m.prevState = m.state
		m.state = stateHelp
		return nil

	case key.Matches(msg, m.keys.Refresh):
		if m.state == stateReview {
			return []tea.Cmd{m.startQueueLoad(m.activeType)}
		}
		return []tea.Cmd{m.fetchSummaryCmd(), m.fetchAuditStatusCmd()}
	}

	if m.state == stateSummary {
		return m.handleSummaryKey(msg)
	}
	return m.handleReviewKey(msg)
}

func (m *Model) handleSummaryKey(msg tea.KeyMsg) []tea.Cmd {
	if key.Matches(msg, m.keys.Queue) {
		t := review.AllTypes[int(msg.String()[0]-'1')]
		m.activeType = t
		m.state = stateReview
		m.syncEditors()
		if !m.store.Loaded(t) && !m.loading[t] {
			return []tea.Cmd{m.startQueueLoad(t)}
		}
	}
	return nil
}

func (m *Model) handleReviewKey(msg tea.KeyMsg) []tea.Cmd {
	t := m.activeType
	item, hasItem := m.store.Current(t)

	if key.Matches(msg, m.keys.Back) {
		m.state = stateSummary
		return []tea.Cmd{m.fetchSummaryCmd()}
	}

	// Everything below, navigation included, waits for the in-flight action.
	// Moving the cursor mid-save must not change which item the reviewer is
	// looking at when the result lands.
	if m.actionBusy {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		if m.store.Retreat(t) {
			m.syncEditors()
		}
		return nil

	case key.Matches(msg, m.keys.Next):
		if m.store.Advance(t) {
			m.syncEditors()
		}
		return nil
	}

	if !hasItem {
		return nil
	}
	plan := review.Plan(t, item)

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit(t)

	case key.Matches(msg, m.keys.Message) && plan.ShowMessageBox:
		m.focus = focusMessage
		return []tea.Cmd{m.msgInput.Focus()}

	case key.Matches(msg, m.keys.Comment) && plan.ShowCommentBox:
		m.focus = focusComment
		return []tea.Cmd{m.commentInput.Focus()}

	case key.Matches(msg, m.keys.Flag) && plan.ShowFlagRating:
		return []tea.Cmd{m.setFlagCmd(t, item, nextFlag(item.CurrentFlag))}

	case key.Matches(msg, m.keys.Approve) && plan.ShowApproval:
		return []tea.Cmd{m.approveCmd(t, item)}

	case key.Matches(msg, m.keys.CopyLink) && item.VideoLink != "":
		if err := clipboard.WriteAll(item.VideoLink); err != nil {
			m.bus.Errorf("copy failed: %v", err)
		} else {
			m.bus.Infof("Video link copied")
		}
		return nil

	case key.Matches(msg, m.keys.Rate) && plan.ShowFlagRating:
		r := int(msg.String()[0] - '0')
		return []tea.Cmd{m.setRatingCmd(t, item, r)}
	}
	return nil
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) []tea.Cmd {
	switch msg.String() {
	case "esc":
		m.blurEditors()
		return nil
	case "ctrl+s":
		m.blurEditors()
		return m.submit(m.activeType)
	}

	var cmd tea.Cmd
	if m.focus == focusMessage {
		m.msgInput, cmd = m.msgInput.Update(msg)
	} else {
		m.commentInput, cmd = m.commentInput.Update(msg)
	}
	return []tea.Cmd{cmd}
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) []tea.Cmd {
	confirmed, done := m.confirm.Handle(msg.String())
	if !done {
		return nil
	}
	m.state = stateReview
	if !confirmed {
		// Declining reverts the editors to the last server-accepted state.
		m.syncEditors()
		return nil
	}
	m.actionBusy = true
	return []tea.Cmd{m.performActionCmd(m.activeType, m.pendingItem, m.pendingEd, true)}
}

// submit runs the type's primary action for the current item. The item is
// snapshotted here, on the event loop, so the in-flight call is pinned to it.
func (m *Model) submit(t review.Type) []tea.Cmd {
	item, ok := m.store.Current(t)
	if !ok || m.actionBusy {
		return nil
	}
	m.pendingItem = item
	m.pendingEd = review.EditorState{
		Message: m.msgInput.Value(),
		Comment: m.commentInput.Value(),
		Rating:  item.CurrentRating,
	}
	m.actionBusy = true
	return []tea.Cmd{m.performActionCmd(t, m.pendingItem, m.pendingEd, false)}
}

func (m *Model) handleActionDone(msg actionDoneMsg) []tea.Cmd {
	m.actionBusy = false
	// A partial failure can still carry accepted fields.
	m.applyPatch(msg.typ, msg.result.Patch)
	if msg.err != nil {
		m.bus.Errorf("%v", msg.err)
		return nil
	}
	if msg.result.NeedsConfirm {
		m.confirm = components.NewConfirmModal(
			"Already reviewed",
			"This post is reviewed and approved. Save changes anyway?",
		)
		m.state = stateConfirming
		return nil
	}
	if msg.result.Notice != "" {
		m.bus.Infof("%s", msg.result.Notice)
	}
	if msg.result.Advance {
		return []tea.Cmd{scheduleAdvance(msg.typ)}
	}
	return nil
}

func (m *Model) handleQueueLoaded(msg queueLoadedMsg) []tea.Cmd {
	if msg.token != m.tokens[msg.typ] {
		m.log.Debug().Str("type", msg.typ.String()).Uint64("token", msg.token).Msg("dropping stale queue response")
		return nil
	}
	m.loading[msg.typ] = false
	if msg.err != nil {
		m.unavailable[msg.typ] = true
		m.bus.Errorf("loading %s failed: %v", msg.typ.Label(), msg.err)
		// The reviewer lands back on the summary rather than an empty
		// review frame; r from there retries the load.
		if msg.typ == m.activeType && m.state == stateReview {
			m.state = stateSummary
		}
		return nil
	}
	m.unavailable[msg.typ] = false
	m.store.Replace(msg.typ, msg.items)
	if msg.typ == m.activeType {
		m.syncEditors()
	}
	return nil
}

// startQueueLoad issues a fenced fetch for a queue. A load already in
// flight for the type is superseded, not duplicated.
func (m *Model) startQueueLoad(t review.Type) tea.Cmd {
	m.tokens[t]++
	m.loading[t] = true
	return m.loadQueueCmd(t, m.tokens[t])
}

// applyPatch folds server-accepted fields into the cached item they belong
// to. The editors refresh only when the patched item is the one on screen.
func (m *Model) applyPatch(t review.Type, p review.Patch) {
	if p.Empty() {
		return
	}
	m.store.MutateByID(t, p.PostID, p.Apply)
	if cur, ok := m.store.Current(t); ok && t == m.activeType && cur.PostID == p.PostID {
		m.syncEditors()
	}
}

// syncEditors resets both editors from the cached current item. The comment
// editor always starts empty; the message editor carries the suggestion.
func (m *Model) syncEditors() {
	m.blurEditors()
	m.commentInput.SetValue("")
	if item, ok := m.store.Current(m.activeType); ok {
		m.msgInput.SetValue(item.SuggestedMessage)
	} else {
		m.msgInput.SetValue("")
	}
}

func (m *Model) blurEditors() {
	m.focus = focusNone
	m.msgInput.Blur()
	m.commentInput.Blur()
}

// nextFlag cycles to the flag after current, wrapping around.
func nextFlag(current string) string {
	for i, f := range review.ModerationFlags {
		if f == current {
			return review.ModerationFlags[(i+1)%len(review.ModerationFlags)]
		}
	}
	return review.ModerationFlags[0]
}

// Run starts the Bubble Tea program in the alternate screen.
func Run(cfg *config.Config, backend Backend, log zerolog.Logger, warnings []string) error {
	m := New(cfg, backend, log)
	for _, w := range warnings {
		m.Bus().Warnf("%s", w)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// History returns the notification history, newest first.
func (m *Model) History() []corenotify.Notification { return m.bus.History() }
