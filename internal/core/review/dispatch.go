package review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonyops/curator/internal/core/logging"
	"github.com/colonyops/curator/internal/core/messaging"
)

// Validation and flow-control errors for reviewer actions.
var (
	ErrMissingPostID = errors.New("item has no post id")
	ErrEmptyMessage  = errors.New("message cannot be empty")
	ErrNoContact     = errors.New("no contact number for this influencer")
	ErrEmptyFeedback = errors.New("a comment or a rating is required")
	ErrBadRating     = errors.New("rating must be between 1 and 5")
)

// SendParams carries everything the send-message endpoint needs.
type SendParams struct {
	Type           string
	InfluencerName string
	Message        string
	PostID         string
	InfluencerID   string
	ContactNumber  string
}

// Service is the mutation surface of the remote review service.
type Service interface {
	SendMessage(ctx context.Context, p SendParams) (string, error)
	SaveComment(ctx context.Context, postID, comment string) error
	SaveRating(ctx context.Context, postID string, rating int) error
	SaveFlag(ctx context.Context, postID, flag string) error
	MarkReviewed(ctx context.Context, postID string, reviewed bool) error
	ApprovePost(ctx context.Context, postID string) error
	LogMessage(ctx context.Context, p SendParams) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Messenger opens a messaging deep link, reusing a live companion window
// when possible.
type Messenger interface {
	Open(url string) (reused bool, err error)
}

// EditorState is the reviewer's in-progress edits for the current item.
type EditorState struct {
	Message string
	Comment string
	Rating  int
}

// Patch records the fields the server accepted for one item, keyed by post
// id so the caller can apply it to the cache no matter where the cursor has
// moved in the meantime. Nil fields were not touched.
type Patch struct {
	PostID           string
	Reviewed         *bool
	Rating           *int
	Flag             *string
	SuggestedMessage *string
	ApprovedStatus   *string
}

// Empty reports whether the patch carries no accepted fields.
func (p Patch) Empty() bool {
	return p.Reviewed == nil && p.Rating == nil && p.Flag == nil &&
		p.SuggestedMessage == nil && p.ApprovedStatus == nil
}

// Apply copies the accepted fields onto a cached item.
func (p Patch) Apply(it *Item) {
	if p.Reviewed != nil {
		it.Reviewed = *p.Reviewed
	}
	if p.Rating != nil {
		it.CurrentRating = *p.Rating
	}
	if p.Flag != nil {
		it.CurrentFlag = *p.Flag
	}
	if p.SuggestedMessage != nil {
		it.SuggestedMessage = *p.SuggestedMessage
	}
	if p.ApprovedStatus != nil {
		it.ApprovedStatus = *p.ApprovedStatus
	}
}

// Result describes what a dispatched action did.
type Result struct {
	Kind ActionKind
	// Advance asks the caller to move the cursor forward after its render
	// delay. Never set together with NeedsConfirm.
	Advance bool
	// NeedsConfirm means the item was already reviewed and approved; the
	// caller must get explicit confirmation and retry with confirmed=true.
	NeedsConfirm bool
	// Notice is a human-readable success message for the toast stack.
	Notice string
	// Patch holds the fields the server accepted. The caller applies it on
	// its own event loop; the dispatcher never touches shared state.
	Patch Patch
}

// Dispatcher routes reviewer actions to the remote service. It works on a
// snapshot of the item passed by the caller, so the caller can keep
// navigating while a call is in flight and still reconcile the right item
// from the returned patch.
type Dispatcher struct {
	svc           Service
	clip          Clipboard
	msgr          Messenger
	countryPrefix string
	log           zerolog.Logger
}

// NewDispatcher wires a dispatcher over the remote service.
func NewDispatcher(svc Service, clip Clipboard, msgr Messenger, countryPrefix string, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		svc:           svc,
		clip:          clip,
		msgr:          msgr,
		countryPrefix: countryPrefix,
		log:           log,
	}
}

// PerformAction runs the main action for the given item. confirmed
// acknowledges a re-save of an already finalized item.
func (d *Dispatcher) PerformAction(ctx context.Context, t Type, item Item, ed EditorState, confirmed bool) (Result, error) {
	ctx = logging.WithPostID(ctx, item.PostID)

	switch Route(t, item) {
	case ActionSendMessage:
		return d.sendMessage(ctx, t, item, ed)
	default:
		return d.saveFeedback(ctx, item, ed, confirmed)
	}
}

func (d *Dispatcher) sendMessage(ctx context.Context, t Type, item Item, ed EditorState) (Result, error) {
	message := strings.TrimSpace(ed.Message)
	if message == "" {
		return Result{}, ErrEmptyMessage
	}
	if strings.TrimSpace(item.ContactNumber) == "" {
		return Result{}, ErrNoContact
	}

	number, err := messaging.NormalizePhone(item.ContactNumber, d.countryPrefix)
	if err != nil {
		return Result{}, ErrNoContact
	}

	// Clipboard is the fallback delivery channel; a failure here is logged
	// but does not block the send.
	if err := d.clip.WriteAll(message); err != nil {
		d.log.Warn().Err(err).Msg("clipboard copy failed")
	}

	params := SendParams{
		Type:           t.String(),
		InfluencerName: item.InfluencerName,
		Message:        message,
		ContactNumber:  number,
	}
	if t == TypeNotUploaded {
		params.InfluencerID = item.InfluencerID
	} else {
		params.PostID = item.PostID
	}

	notice, err := d.svc.SendMessage(ctx, params)
	if err != nil {
		return Result{}, fmt.Errorf("send message: %w", err)
	}
	if notice == "" {
		notice = "Message sent"
	}

	reused, err := d.msgr.Open(messaging.DeepLink(number, message))
	if err != nil {
		// The message is recorded server-side and sits on the clipboard,
		// so a window failure is not fatal to the action.
		d.log.Warn().Err(err).Str("number", number).Msg("messaging window failed to open")
	} else if reused {
		d.log.Debug().Str("number", number).Msg("reused live messaging window")
	}

	if err := d.svc.LogMessage(ctx, params); err != nil {
		d.log.Warn().Err(err).Msg("log message call failed")
	}

	return Result{Kind: ActionSendMessage, Advance: true, Notice: notice}, nil
}

func (d *Dispatcher) saveFeedback(ctx context.Context, item Item, ed EditorState, confirmed bool) (Result, error) {
	comment := strings.TrimSpace(ed.Comment)
	if comment == "" && ed.Rating == 0 {
		return Result{}, ErrEmptyFeedback
	}
	if item.PostID == "" {
		return Result{}, ErrMissingPostID
	}

	if item.Reviewed && item.IsApproved() && !confirmed {
		return Result{Kind: ActionSaveFeedback, NeedsConfirm: true}, nil
	}

	// The three calls fail independently; the patch only carries fields the
	// server accepted, and the cursor advances only on a clean sweep.
	var errs []error
	patch := Patch{PostID: item.PostID}

	if comment != "" {
		if err := d.svc.SaveComment(ctx, item.PostID, comment); err != nil {
			errs = append(errs, fmt.Errorf("save comment: %w", err))
		}
	}

	if ed.Rating != 0 {
		if err := d.svc.SaveRating(ctx, item.PostID, ed.Rating); err != nil {
			errs = append(errs, fmt.Errorf("save rating: %w", err))
		} else {
			rating := ed.Rating
			patch.Rating = &rating
		}
	}

	if err := d.svc.MarkReviewed(ctx, item.PostID, true); err != nil {
		errs = append(errs, fmt.Errorf("mark reviewed: %w", err))
	} else {
		reviewed := true
		patch.Reviewed = &reviewed
	}

	if err := errors.Join(errs...); err != nil {
		return Result{Kind: ActionSaveFeedback, Patch: patch}, err
	}
	return Result{Kind: ActionSaveFeedback, Advance: true, Notice: "Feedback saved", Patch: patch}, nil
}

// SetRating immediately persists a star rating for the given item. Does not
// advance the cursor.
func (d *Dispatcher) SetRating(ctx context.Context, item Item, rating int) (Patch, error) {
	if rating < 1 || rating > 5 {
		return Patch{}, ErrBadRating
	}
	if item.PostID == "" {
		return Patch{}, ErrMissingPostID
	}
	if err := d.svc.SaveRating(logging.WithPostID(ctx, item.PostID), item.PostID, rating); err != nil {
		return Patch{}, fmt.Errorf("save rating: %w", err)
	}
	return Patch{PostID: item.PostID, Rating: &rating}, nil
}

// SetFlag immediately persists a moderation flag for the given item and
// regenerates the suggested message from the new flag.
func (d *Dispatcher) SetFlag(ctx context.Context, item Item, flag string) (Patch, error) {
	if item.PostID == "" {
		return Patch{}, ErrMissingPostID
	}
	if err := d.svc.SaveFlag(logging.WithPostID(ctx, item.PostID), item.PostID, flag); err != nil {
		return Patch{}, fmt.Errorf("save flag: %w", err)
	}
	flagged := item
	flagged.CurrentFlag = flag
	suggested := Suggested(flagged, flag)
	return Patch{PostID: item.PostID, Flag: &flag, SuggestedMessage: &suggested}, nil
}

// Approve immediately persists approved status for the given item. The
// cursor stays put so the reviewer sees the result.
func (d *Dispatcher) Approve(ctx context.Context, item Item) (Patch, error) {
	if item.PostID == "" {
		return Patch{}, ErrMissingPostID
	}
	if err := d.svc.ApprovePost(logging.WithPostID(ctx, item.PostID), item.PostID); err != nil {
		return Patch{}, fmt.Errorf("approve post: %w", err)
	}
	approved := ApprovedYes
	return Patch{PostID: item.PostID, ApprovedStatus: &approved}, nil
}
