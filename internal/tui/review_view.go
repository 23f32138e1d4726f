package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/colonyops/curator/internal/core/review"
	"github.com/colonyops/curator/internal/core/styles"
)

const transcriptMaxLines = 8

func (m *Model) reviewView() string {
	t := m.activeType

	item, ok := m.store.Current(t)
	var plan review.RenderPlan
	switch {
	case m.loading[t] || !m.store.Loaded(t) && !m.unavailable[t]:
		return m.queueFrame(t, m.spinner.View()+" Loading queue...")
	case m.unavailable[t]:
		plan = review.UnavailablePlan(t)
	case m.store.Len(t) == 0:
		plan = review.EmptyPlan(t)
	case !ok:
		plan = review.UnavailablePlan(t)
	default:
		plan = review.Plan(t, item)
	}

	switch plan.State {
	case review.StateEmpty:
		return m.queueFrame(t, styles.SuccessStyle.Render("Nothing to review in this queue."))
	case review.StateUnavailable:
		return m.queueFrame(t, styles.ErrorStyle.Render("Queue unavailable. Press r to retry."))
	}

	var b strings.Builder
	b.WriteString(styles.HeadingStyle.Render(plan.InfluencerName))
	if plan.Reviewed {
		b.WriteString("  " + styles.SuccessStyle.Render("reviewed"))
	}
	if plan.Approved {
		b.WriteString("  " + styles.SuccessStyle.Render("approved"))
	}
	b.WriteString("\n\n")

	if plan.ShowVideoLink && plan.VideoLink != "" {
		b.WriteString(m.panel("Video", styles.LinkStyle.Render(plan.VideoLink)))
	}
	if plan.ShowSocialLinks {
		var links []string
		if plan.TiktokLink != "" {
			links = append(links, "TikTok: "+styles.LinkStyle.Render(plan.TiktokLink))
		}
		if plan.InstagramLink != "" {
			links = append(links, "Instagram: "+styles.LinkStyle.Render(plan.InstagramLink))
		}
		if len(links) > 0 {
			b.WriteString(m.panel("Profiles", strings.Join(links, "\n")))
		}
	}
	if plan.ShowIssueCaption && plan.IssueCaption != "" {
		b.WriteString(m.panel("Issues", styles.WarningStyle.Render(plan.IssueCaption)))
	}
	if plan.ShowTranscript {
		b.WriteString(m.panel("Transcript", m.clipText(plan.Transcript)))
	}
	if plan.ShowFlagRating {
		b.WriteString(m.panel("Moderation", m.flagRatingLine(plan)))
	}
	if plan.ShowMessageBox {
		b.WriteString(m.panel("Message (e to edit)", m.msgInput.View()))
	}
	if plan.ShowCommentBox {
		b.WriteString(m.panel("Comment (c to edit)", m.commentInput.View()))
	}

	b.WriteString("\n")
	b.WriteString(m.actionLine(plan))

	return m.queueFrame(t, b.String())
}

// queueFrame wraps queue content with the shared header and footer.
func (m *Model) queueFrame(t review.Type, content string) string {
	var b strings.Builder

	header := styles.TitleStyle.Render(t.Label())
	if m.store.Loaded(t) && m.store.Len(t) > 0 {
		header += styles.MutedStyle.Render(fmt.Sprintf("  %d / %d", m.store.Index(t)+1, m.store.Len(t)))
	}
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(content)
	b.WriteString("\n")

	if m.store.Loaded(t) && m.store.AtEnd(t) && m.store.Len(t) > 0 {
		b.WriteString(styles.FinishedStyle.Render("End of queue"))
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedStyle.Render("p/n prev/next • esc back • ? help"))
	return b.String()
}

func (m *Model) panel(title, content string) string {
	return styles.PanelTitleStyle.Render(title) + "\n" +
		styles.PanelStyle.Render(content) + "\n"
}

func (m *Model) actionLine(plan review.RenderPlan) string {
	var parts []string
	switch plan.Action {
	case review.ActionSendMessage:
		if m.actionBusy {
			parts = append(parts, styles.DisabledButtonStyle.Render("Sending..."))
		} else {
			parts = append(parts, styles.SendButtonStyle.Render("Send Message (enter)"))
		}
	case review.ActionSaveFeedback:
		if m.actionBusy {
			parts = append(parts, styles.DisabledButtonStyle.Render("Saving..."))
		} else {
			parts = append(parts, styles.SaveButtonStyle.Render("Save & Mark Reviewed (enter)"))
		}
	}
	if plan.ShowApproval && !plan.Approved {
		parts = append(parts, styles.MutedStyle.Render("a approve"))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) flagRatingLine(plan review.RenderPlan) string {
	flag := plan.CurrentFlag
	if flag == "" {
		flag = "none"
	}

	var stars strings.Builder
	for i := 1; i <= 5; i++ {
		if i <= plan.CurrentRating {
			stars.WriteString(styles.StarFilledStyle.Render("★"))
		} else {
			stars.WriteString(styles.StarEmptyStyle.Render("☆"))
		}
	}
	return fmt.Sprintf("Flag: %s (f to cycle)\nRating: %s (1-5)", flag, stars.String())
}

// clipText wraps long text to the view width and caps its height.
func (m *Model) clipText(s string) string {
	if strings.TrimSpace(s) == "" {
		return styles.MutedStyle.Render("No transcript available")
	}

	width := m.width - 8
	if width < 20 {
		width = 72
	}
	wrapped := wordwrap.String(s, width)

	lines := strings.Split(wrapped, "\n")
	if len(lines) > transcriptMaxLines {
		lines = lines[:transcriptMaxLines]
		last := truncate.StringWithTail(lines[transcriptMaxLines-1], uint(width), "…")
		lines[transcriptMaxLines-1] = last
	}
	return strings.Join(lines, "\n")
}
