// Package review holds the campaign content-review domain: review queues,
// cursor navigation, render planning, and reviewer action dispatch.
package review

import "fmt"

// Type identifies one of the named review queues a reviewer works through.
type Type int

const (
	TypeIssues Type = iota
	TypeNotUploaded
	TypeManualReview
	TypeCombined
)

// AllTypes lists every review type in display order.
var AllTypes = []Type{TypeIssues, TypeNotUploaded, TypeManualReview, TypeCombined}

// String returns the wire name used in API query parameters.
func (t Type) String() string {
	switch t {
	case TypeIssues:
		return "issues"
	case TypeNotUploaded:
		return "not_uploaded"
	case TypeManualReview:
		return "manual_review"
	case TypeCombined:
		return "combined"
	default:
		return "unknown"
	}
}

// Label returns the human-readable heading for the review type.
func (t Type) Label() string {
	switch t {
	case TypeIssues:
		return "Posts with Issues"
	case TypeNotUploaded:
		return "Videos Not Uploaded"
	case TypeManualReview:
		return "Video Comments"
	case TypeCombined:
		return "All Posts"
	default:
		return "Review Items"
	}
}

// ParseType converts a wire name into a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "issues":
		return TypeIssues, nil
	case "not_uploaded":
		return TypeNotUploaded, nil
	case "manual_review":
		return TypeManualReview, nil
	case "combined":
		return TypeCombined, nil
	default:
		return 0, fmt.Errorf("unknown review type %q", s)
	}
}

// Reviewer-assigned moderation flags with dedicated message templates.
const (
	FlagVideoOK  = "Video Ok"
	FlagTakeDown = "Take Down Video"
)

// ModerationFlags lists the selectable flag values in cycle order.
var ModerationFlags = []string{FlagVideoOK, FlagTakeDown, "Review Further"}

// ApprovedYes is the wire value marking a post as approved.
const ApprovedYes = "YES"

// Item is a single unit of review work. The populated fields vary by review
// type; this is the union of all shapes the service returns.
type Item struct {
	PostID         string `json:"postId,omitempty"`
	InfluencerID   string `json:"influencerId,omitempty"`
	InfluencerName string `json:"influencerName"`
	CampaignName   string `json:"campaignName,omitempty"`

	VideoLink     string `json:"videoLink,omitempty"`
	TiktokLink    string `json:"tiktokLink,omitempty"`
	InstagramLink string `json:"instagramLink,omitempty"`
	Transcript    string `json:"transcript,omitempty"`

	HasIssues    bool   `json:"hasIssues,omitempty"`
	IssueCaption string `json:"issueCaption,omitempty"`

	SuggestedMessage string `json:"suggestedMessage,omitempty"`
	CurrentFlag      string `json:"currentFlag,omitempty"`
	CurrentRating    int    `json:"currentRating,omitempty"`

	Reviewed       bool   `json:"reviewed,omitempty"`
	ApprovedStatus string `json:"approved_Status,omitempty"`

	ContactNumber string `json:"contactNumber,omitempty"`
	Type          string `json:"type,omitempty"`
}

// IsApproved reports whether the post already carries approved status.
func (i Item) IsApproved() bool {
	return i.ApprovedStatus == ApprovedYes
}

// SummaryCounts are the overview-screen counters for a campaign.
type SummaryCounts struct {
	Influencers  int `json:"number_of_influencers"`
	NoIssues     int `json:"videos_with_no_issues"`
	WithIssues   int `json:"videos_with_issues"`
	NotUploaded  int `json:"videos_not_loaded_yet"`
	ManualReview int `json:"videos_for_manual_review"`
}
