package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/curator/internal/core/logging"
	"github.com/colonyops/curator/internal/core/styles"
)

type AuditCmd struct {
	flags *Flags
}

// NewAuditCmd creates a new audit command.
func NewAuditCmd(flags *Flags) *AuditCmd {
	return &AuditCmd{flags: flags}
}

// Register adds the audit command group to the application.
func (cmd *AuditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "audit",
		Usage: "Campaign content audit runs",
		Commands: []*cli.Command{
			{
				Name:      "start",
				Usage:     "Kick off an audit for the configured campaign",
				UsageText: "curator audit start",
				Action:    cmd.start,
			},
			{
				Name:      "status",
				Usage:     "Show campaigns with an audit in progress",
				UsageText: "curator audit status",
				Action:    cmd.status,
			},
		},
	})
	return app
}

func (cmd *AuditCmd) start(ctx context.Context, c *cli.Command) error {
	campaignID := cmd.flags.Config.CampaignID
	if campaignID == "" {
		return fmt.Errorf("no campaign selected. Set campaign_id in the config or pass --campaign")
	}

	notice, err := cmd.flags.Client.StartAudit(logging.WithCampaignID(ctx, campaignID), campaignID)
	if err != nil {
		return fmt.Errorf("start audit: %w", err)
	}
	if notice == "" {
		notice = "Audit started"
	}
	fmt.Fprintln(c.Root().Writer, styles.SuccessStyle.Render(notice))
	return nil
}

func (cmd *AuditCmd) status(ctx context.Context, c *cli.Command) error {
	active, err := cmd.flags.Client.AuditStatus(ctx)
	if err != nil {
		return fmt.Errorf("audit status: %w", err)
	}

	w := c.Root().Writer
	if len(active) == 0 {
		fmt.Fprintln(w, "No audits running")
		return nil
	}
	fmt.Fprintf(w, "Audits in progress: %s\n", strings.Join(active, ", "))
	return nil
}
