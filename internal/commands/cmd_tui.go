package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/curator/internal/core/config"
	"github.com/colonyops/curator/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	if cfg.CampaignID == "" && len(cfg.Campaigns) > 0 {
		id, err := pickCampaign(cfg.Campaigns)
		if err != nil {
			return err
		}
		cfg.CampaignID = id
	}
	if cfg.CampaignID == "" {
		return fmt.Errorf("no campaign selected. Set campaign_id in the config or pass --campaign")
	}

	var warnings []string
	if cfg.Campaigns == nil {
		warnings = append(warnings, "No campaigns configured; using the configured campaign id as-is.")
	}

	log.Info().Str("campaign", cfg.CampaignID).Str("server", cfg.ServerURL).Msg("starting review dashboard")
	return tui.Run(cfg, cmd.flags.Client, log.Logger, warnings)
}

// pickCampaign prompts for a campaign when the config does not pin one.
func pickCampaign(campaigns []config.Campaign) (string, error) {
	options := make([]huh.Option[string], 0, len(campaigns))
	for _, c := range campaigns {
		label := c.Name
		if label == "" {
			label = c.ID
		}
		options = append(options, huh.NewOption(label, c.ID))
	}

	var id string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Campaign").
				Description("Which campaign do you want to review?").
				Options(options...).
				Value(&id),
		),
	).Run()
	if err != nil {
		return "", fmt.Errorf("campaign selection: %w", err)
	}
	return id, nil
}
