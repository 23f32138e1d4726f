package review

// State distinguishes what the review screen should show.
type State int

const (
	// StateItem renders the current item's panels.
	StateItem State = iota
	// StateEmpty means the queue was fetched and contains nothing.
	StateEmpty
	// StateUnavailable means the queue is non-empty but the cursor has no
	// corresponding item. Kept distinct from StateEmpty on purpose.
	StateUnavailable
)

// ActionKind is what the main action control does for the current item.
type ActionKind int

const (
	ActionNone ActionKind = iota
	// ActionSendMessage delivers the suggested message to the influencer.
	ActionSendMessage
	// ActionSaveFeedback persists comment/rating and marks the item reviewed.
	ActionSaveFeedback
)

// RenderPlan enumerates which named panels are visible for the current item
// and carries their field values. It is a pure function of (type, item).
type RenderPlan struct {
	State State
	// Label is the human-readable review-type heading, always set.
	Label string

	ShowVideoLink    bool
	ShowSocialLinks  bool
	ShowIssueCaption bool
	ShowTranscript   bool
	ShowMessageBox   bool
	ShowCommentBox   bool
	ShowFlagRating   bool
	ShowApproval     bool

	Action ActionKind

	InfluencerName string
	VideoLink      string
	TiktokLink     string
	InstagramLink  string
	IssueCaption   string
	Transcript     string
	Message        string
	CurrentFlag    string
	CurrentRating  int
	Approved       bool
	Reviewed       bool
}

// EmptyPlan is the explicit empty-queue state for a review type.
func EmptyPlan(t Type) RenderPlan {
	return RenderPlan{State: StateEmpty, Label: t.Label()}
}

// UnavailablePlan is the defensive out-of-range state for a review type.
func UnavailablePlan(t Type) RenderPlan {
	return RenderPlan{State: StateUnavailable, Label: t.Label()}
}

// Plan decides panel visibility and content for the given item.
func Plan(t Type, item Item) RenderPlan {
	p := RenderPlan{
		State:          StateItem,
		Label:          t.Label(),
		InfluencerName: item.InfluencerName,
		VideoLink:      item.VideoLink,
		TiktokLink:     item.TiktokLink,
		InstagramLink:  item.InstagramLink,
		IssueCaption:   item.IssueCaption,
		Transcript:     item.Transcript,
		Message:        item.SuggestedMessage,
		CurrentFlag:    item.CurrentFlag,
		CurrentRating:  item.CurrentRating,
		Approved:       item.IsApproved(),
		Reviewed:       item.Reviewed,
	}

	p.Action = Route(t, item)

	switch t {
	case TypeNotUploaded:
		p.ShowSocialLinks = true
		p.ShowMessageBox = true

	case TypeManualReview:
		p.ShowVideoLink = true
		p.ShowTranscript = true
		p.ShowCommentBox = true
		p.ShowFlagRating = true

	case TypeIssues:
		p.ShowVideoLink = true
		p.ShowIssueCaption = true
		p.ShowMessageBox = true
		p.ShowFlagRating = true

	case TypeCombined:
		p.ShowVideoLink = true
		p.ShowMessageBox = true
		p.ShowFlagRating = true
		if item.HasIssues {
			p.ShowIssueCaption = true
		} else {
			p.ShowCommentBox = true
			p.ShowApproval = true
		}
	}

	return p
}

// Route selects what the main action does for an item. Not-yet-uploaded
// reminders and anything with logged issues go out as a message; everything
// else saves reviewer feedback.
func Route(t Type, item Item) ActionKind {
	if t == TypeNotUploaded || item.HasIssues {
		return ActionSendMessage
	}
	return ActionSaveFeedback
}
