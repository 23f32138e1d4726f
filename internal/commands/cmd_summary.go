package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/curator/internal/core/logging"
	"github.com/colonyops/curator/internal/core/styles"
)

type SummaryCmd struct {
	flags  *Flags
	format string
}

// NewSummaryCmd creates a new summary command.
func NewSummaryCmd(flags *Flags) *SummaryCmd {
	return &SummaryCmd{flags: flags}
}

// Register adds the summary command to the application.
func (cmd *SummaryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "summary",
		Usage:     "Print review counts for the campaign",
		UsageText: "curator summary [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (auto, text, json)",
				Value:       "auto",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *SummaryCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCampaignID(ctx, cmd.flags.Config.CampaignID)
	counts, err := cmd.flags.Client.GetSummary(ctx, cmd.flags.Config.CampaignID)
	if err != nil {
		return fmt.Errorf("fetch summary: %w", err)
	}

	format := cmd.format
	if format == "auto" {
		// Pipes get machine-readable output.
		if term.IsTerminal(int(os.Stdout.Fd())) {
			format = "text"
		} else {
			format = "json"
		}
	}

	if format == "json" {
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(counts)
	}

	w := c.Root().Writer
	fmt.Fprintln(w, styles.TitleStyle.Render(cmd.flags.Config.CampaignName(cmd.flags.Config.CampaignID)))
	fmt.Fprintf(w, "  %-24s %d\n", "Influencers", counts.Influencers)
	fmt.Fprintf(w, "  %-24s %d\n", "Videos with no issues", counts.NoIssues)
	fmt.Fprintf(w, "  %-24s %d\n", "Videos with issues", counts.WithIssues)
	fmt.Fprintf(w, "  %-24s %d\n", "Videos not uploaded", counts.NotUploaded)
	fmt.Fprintf(w, "  %-24s %d\n", "Manual review", counts.ManualReview)
	return nil
}
