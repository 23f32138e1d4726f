package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		setupCtx  func() context.Context
		wantKeys  []string
		wantEmpty []string
	}{
		{
			name: "both campaign_id and post_id",
			setupCtx: func() context.Context {
				ctx := context.Background()
				ctx = WithCampaignID(ctx, "camp-123")
				ctx = WithPostID(ctx, "post-456")
				return ctx
			},
			wantKeys: []string{"campaign_id", "post_id"},
		},
		{
			name: "only campaign_id",
			setupCtx: func() context.Context {
				return WithCampaignID(context.Background(), "camp-123")
			},
			wantKeys:  []string{"campaign_id"},
			wantEmpty: []string{"post_id"},
		},
		{
			name: "only post_id",
			setupCtx: func() context.Context {
				return WithPostID(context.Background(), "post-456")
			},
			wantKeys:  []string{"post_id"},
			wantEmpty: []string{"campaign_id"},
		},
		{
			name:      "no context values",
			setupCtx:  context.Background,
			wantEmpty: []string{"campaign_id", "post_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := tt.setupCtx()

			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(ctx).Msg("test")

			var logEntry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
				t.Fatalf("failed to parse log: %v", err)
			}

			for _, key := range tt.wantKeys {
				if _, ok := logEntry[key]; !ok {
					t.Errorf("expected %s to be present in log", key)
				}
			}

			for _, key := range tt.wantEmpty {
				if _, ok := logEntry[key]; ok {
					t.Errorf("expected %s to be absent from log", key)
				}
			}
		})
	}
}
