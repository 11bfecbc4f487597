package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"starsync/internal/config"
	"starsync/internal/ghostty"
	"starsync/internal/palette"
	"starsync/internal/starship"
	"starsync/pkg/logging"
)

func newSyncCmd() *cobra.Command {
	var templateFlag string
	var outputFlag string
	var ghosttyFlag string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Render the Starship config with a palette derived from Ghostty",
		Long: `Reads the active Ghostty theme via 'ghostty +show-config', derives the
prompt palette from it, and renders the Starship template to the output
path with the palette section filled in.

If Ghostty cannot be queried (not installed, not on PATH), the template is
rendered unmodified so the prompt keeps working with its baked-in colors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if templateFlag != "" {
				cfg.Template = templateFlag
			}
			if outputFlag != "" {
				cfg.Output = outputFlag
			}
			if ghosttyFlag != "" {
				cfg.GhosttyCommand = ghosttyFlag
			}

			templatePath, err := config.ExpandPath(cfg.Template)
			if err != nil {
				return err
			}
			outputPath, err := config.ExpandPath(cfg.Output)
			if err != nil {
				return err
			}

			templateData, err := os.ReadFile(templatePath)
			if err != nil {
				return fmt.Errorf("failed to read template '%s': %w", templatePath, err)
			}
			rendered := string(templateData)

			theme, err := ghostty.Load(cmd.Context(), cfg.GhosttyCommand)
			if err != nil {
				// Degrade to "no theme change": the template still renders.
				logging.Warn("sync", "ghostty theme unavailable, rendering template unmodified: %v", err)
			} else {
				pal := palette.Derive(theme.Input(), cfg.PaletteThresholds())
				rendered = starship.EnsurePaletteRef(rendered)
				rendered = starship.SetPaletteValues(rendered, pal)
			}

			changed, err := starship.WriteIfChanged(outputPath, rendered)
			if err != nil {
				return err
			}
			if changed {
				logging.Info("sync", "wrote %s", outputPath)
			} else {
				logging.Info("sync", "%s already up to date", outputPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&templateFlag, "template", "", "path to the Starship template config")
	cmd.Flags().StringVar(&outputFlag, "output", "", "path to the generated Starship config")
	cmd.Flags().StringVar(&ghosttyFlag, "ghostty-cmd", "", "ghostty executable name or path")

	return cmd
}
