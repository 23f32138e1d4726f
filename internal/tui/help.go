package tui

import (
	"github.com/charmbracelet/glamour"

	"github.com/colonyops/curator/internal/core/styles"
)

const helpMarkdown = `# Curator

## Summary screen

| Key | Action |
| --- | --- |
| 1-4 | open a review queue |
| r   | refresh counts and audit status |
| q   | quit |

## Review screen

| Key | Action |
| --- | --- |
| p / n | previous / next item |
| enter | send message or save feedback |
| e     | edit the message |
| c     | edit the comment |
| 1-5   | set star rating |
| f     | cycle moderation flag |
| a     | approve post |
| y     | copy video link |
| esc   | back to summary |

Inside an editor, esc leaves the editor and ctrl+s submits.
`

// helpView lazily renders the help markdown once per session.
func (m *Model) helpView() string {
	if m.helpMD == "" {
		width := m.width - 4
		if width < 40 || width > 100 {
			width = 80
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(width),
		)
		if err == nil {
			if out, rerr := r.Render(helpMarkdown); rerr == nil {
				m.helpMD = out
			}
		}
		if m.helpMD == "" {
			m.helpMD = helpMarkdown
		}
	}
	return m.helpMD + "\n" + styles.MutedStyle.Render("press any key to close")
}
