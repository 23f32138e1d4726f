// Package api is the HTTP client for the remote campaign review service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/curator/internal/core/review"
)

// DefaultTimeout bounds every request when the config does not say otherwise.
const DefaultTimeout = 15 * time.Second

// Client talks JSON to the review service. All methods take a context and
// return wrapped errors; callers decide what is fatal.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

var _ review.Service = (*Client)(nil)

// New creates a client for the service at baseURL.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// errBody is the error envelope the service attaches to non-2xx responses.
type errBody struct {
	Error string `json:"error"`
}

// GetSummary fetches the overview counters for a campaign.
func (c *Client) GetSummary(ctx context.Context, campaignID string) (review.SummaryCounts, error) {
	q := url.Values{}
	if campaignID != "" {
		q.Set("campaign_id", campaignID)
	}

	var out struct {
		review.SummaryCounts
		Error string `json:"error"`
	}
	if err := c.get(ctx, "/get_summary_data", q, &out); err != nil {
		return review.SummaryCounts{}, fmt.Errorf("get summary: %w", err)
	}
	if out.Error != "" {
		return review.SummaryCounts{}, fmt.Errorf("get summary: %s", out.Error)
	}
	return out.SummaryCounts, nil
}

// GetReviewItems fetches the full queue for a review type. The caller
// replaces any cached queue wholesale.
func (c *Client) GetReviewItems(ctx context.Context, t review.Type, campaignID string) ([]review.Item, error) {
	q := url.Values{}
	q.Set("type", t.String())
	if campaignID != "" {
		q.Set("campaign_id", campaignID)
	}

	var items []review.Item
	if err := c.get(ctx, "/get_review_data", q, &items); err != nil {
		return nil, fmt.Errorf("get %s review data: %w", t, err)
	}
	return items, nil
}

// AuditStatus returns the campaign ids with an audit in flight.
func (c *Client) AuditStatus(ctx context.Context) ([]string, error) {
	var out struct {
		ActiveAudits []string `json:"active_audits"`
	}
	if err := c.get(ctx, "/audit_status", nil, &out); err != nil {
		return nil, fmt.Errorf("audit status: %w", err)
	}
	return out.ActiveAudits, nil
}

// StartAudit kicks off a server-side audit for the campaign and returns the
// service's status message.
func (c *Client) StartAudit(ctx context.Context, campaignID string) (string, error) {
	body := map[string]string{"campaign_id": campaignID}
	var out struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/start_audit", body, &out); err != nil {
		return "", fmt.Errorf("start audit: %w", err)
	}
	return out.Message, nil
}

// SendMessage records a reviewer message against a post or influencer.
func (c *Client) SendMessage(ctx context.Context, p review.SendParams) (string, error) {
	body := map[string]any{
		"type":           p.Type,
		"influencerName": p.InfluencerName,
		"message":        p.Message,
		"contactNumber":  p.ContactNumber,
	}
	if p.PostID != "" {
		body["postId"] = p.PostID
	}
	if p.InfluencerID != "" {
		body["influencerId"] = p.InfluencerID
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/send_message", body, &out); err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}
	return out.Message, nil
}

// SaveComment persists a manager comment on a post.
func (c *Client) SaveComment(ctx context.Context, postID, comment string) error {
	body := map[string]string{"postId": postID, "comment": comment}
	if err := c.post(ctx, "/save_comment", body, nil); err != nil {
		return fmt.Errorf("save comment: %w", err)
	}
	return nil
}

// SaveRating persists a 1-5 star rating on a post.
func (c *Client) SaveRating(ctx context.Context, postID string, rating int) error {
	body := map[string]any{"postId": postID, "rating": rating}
	if err := c.post(ctx, "/save_rating", body, nil); err != nil {
		return fmt.Errorf("save rating: %w", err)
	}
	return nil
}

// SaveFlag persists a moderation flag on a post.
func (c *Client) SaveFlag(ctx context.Context, postID, flag string) error {
	body := map[string]string{"postId": postID, "flag": flag}
	if err := c.post(ctx, "/save_flag", body, nil); err != nil {
		return fmt.Errorf("save flag: %w", err)
	}
	return nil
}

// MarkReviewed sets the reviewed bit on a post.
func (c *Client) MarkReviewed(ctx context.Context, postID string, reviewed bool) error {
	body := map[string]any{"postId": postID, "reviewed": reviewed}
	if err := c.post(ctx, "/mark_reviewed", body, nil); err != nil {
		return fmt.Errorf("mark reviewed: %w", err)
	}
	return nil
}

// ApprovePost sets approved status to "YES" on a post.
func (c *Client) ApprovePost(ctx context.Context, postID string) error {
	body := map[string]string{"postId": postID, "status": review.ApprovedYes}
	if err := c.post(ctx, "/approve_post", body, nil); err != nil {
		return fmt.Errorf("approve post: %w", err)
	}
	return nil
}

// LogMessage records message-delivery activity. Best effort; callers treat
// failures as non-fatal.
func (c *Client) LogMessage(ctx context.Context, p review.SendParams) error {
	body := map[string]string{
		"influencerName": p.InfluencerName,
		"contactNumber":  p.ContactNumber,
		"message":        p.Message,
	}
	if err := c.post(ctx, "/log_message", body, nil); err != nil {
		return fmt.Errorf("log message: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log.Debug().
		Ctx(req.Context()).
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errBody
		if json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, eb.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
