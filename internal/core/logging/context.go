package logging

import "context"

type contextKey string

const (
	campaignIDKey contextKey = "campaign_id"
	postIDKey     contextKey = "post_id"
)

// WithCampaignID adds a campaign ID to the context.
func WithCampaignID(ctx context.Context, campaignID string) context.Context {
	return context.WithValue(ctx, campaignIDKey, campaignID)
}

// WithPostID adds a post ID to the context.
func WithPostID(ctx context.Context, postID string) context.Context {
	return context.WithValue(ctx, postIDKey, postID)
}

// GetCampaignID retrieves the campaign ID from the context.
// Returns empty string if not present.
func GetCampaignID(ctx context.Context) string {
	if id, ok := ctx.Value(campaignIDKey).(string); ok {
		return id
	}
	return ""
}

// GetPostID retrieves the post ID from the context.
// Returns empty string if not present.
func GetPostID(ctx context.Context) string {
	if id, ok := ctx.Value(postIDKey).(string); ok {
		return id
	}
	return ""
}
