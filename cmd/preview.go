package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"starsync/internal/config"
	"starsync/internal/ghostty"
	"starsync/internal/palette"
	"starsync/internal/starship"
	"starsync/pkg/logging"
)

func newPreviewCmd() *cobra.Command {
	var fallbackOnly bool
	var ghosttyFlag string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the derived palette as swatches without writing anything",
		Long: `Derives the palette exactly as 'sync' would and prints each slot as a
color swatch with its hex value. No files are touched.

With --fallback the Ghostty theme is ignored and the built-in fallback
palette is shown instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if ghosttyFlag != "" {
				cfg.GhosttyCommand = ghosttyFlag
			}

			var in palette.Input
			if !fallbackOnly {
				theme, err := ghostty.Load(cmd.Context(), cfg.GhosttyCommand)
				if err != nil {
					logging.Warn("preview", "ghostty theme unavailable, showing fallback palette: %v", err)
				} else {
					in = theme.Input()
				}
			}

			pal := palette.Derive(in, cfg.PaletteThresholds())

			keyStyle := lipgloss.NewStyle().Width(18)
			out := cmd.OutOrStdout()
			for _, entry := range starship.Entries(pal) {
				swatch := lipgloss.NewStyle().
					Background(lipgloss.Color(string(entry.Value))).
					Render("      ")
				fmt.Fprintf(out, "%s %s %s\n", keyStyle.Render(entry.Key), swatch, entry.Value)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fallbackOnly, "fallback", false, "preview the built-in fallback palette")
	cmd.Flags().StringVar(&ghosttyFlag, "ghostty-cmd", "", "ghostty executable name or path")

	return cmd
}
