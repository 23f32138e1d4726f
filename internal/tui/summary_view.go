package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/curator/internal/core/review"
	"github.com/colonyops/curator/internal/core/styles"
)

func (m *Model) summaryView() string {
	var b strings.Builder

	title := fmt.Sprintf("Curator · %s", m.cfg.CampaignName(m.campaignID))
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n\n")

	switch {
	case m.summaryErr != nil && !m.summaryLoaded:
		b.WriteString(styles.ErrorStyle.Render("Summary unavailable: " + m.summaryErr.Error()))
		b.WriteString("\n\n")
	case !m.summaryLoaded:
		b.WriteString(m.spinner.View() + " Loading summary...")
		b.WriteString("\n\n")
	default:
		b.WriteString(m.countersPanel())
		b.WriteString("\n")
		if m.summaryErr != nil {
			b.WriteString(styles.WarningStyle.Render("Last refresh failed; counts may be stale"))
			b.WriteString("\n")
		}
	}

	if len(m.activeAudits) > 0 {
		b.WriteString(styles.WarningStyle.Render(
			fmt.Sprintf("Audit running: %s", strings.Join(m.activeAudits, ", "))))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.HeadingStyle.Render("Review queues"))
	b.WriteString("\n")
	for i, t := range review.AllTypes {
		line := fmt.Sprintf("  %d. %s", i+1, t.Label())
		if m.loading[t] {
			line += "  " + m.spinner.View()
		} else if m.store.Loaded(t) {
			line += styles.MutedStyle.Render(fmt.Sprintf("  (%d items)", m.store.Len(t)))
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render("1-4 open queue • r refresh • ? help • q quit"))
	return b.String()
}

func (m *Model) countersPanel() string {
	counter := func(label string, v int) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			styles.CounterValueStyle.Render(fmt.Sprintf("%d", v)),
			styles.CounterLabelStyle.Render(label),
		)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		counter("Influencers", m.summary.Influencers),
		counter("No Issues", m.summary.NoIssues),
		counter("With Issues", m.summary.WithIssues),
		counter("Not Uploaded", m.summary.NotUploaded),
		counter("Manual Review", m.summary.ManualReview),
	)
	return styles.PanelStyle.Render(row)
}
