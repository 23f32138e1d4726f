package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts campaign_id and post_id from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if campaignID := GetCampaignID(ctx); campaignID != "" {
		e.Str("campaign_id", campaignID)
	}

	if postID := GetPostID(ctx); postID != "" {
		e.Str("post_id", postID)
	}
}
