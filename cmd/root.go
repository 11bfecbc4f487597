package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"starsync/pkg/logging"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "starsync",
	Short: "Sync your Starship palette with the active Ghostty theme",
	Long: `starsync derives a Starship prompt palette from the terminal theme
Ghostty is currently using and injects it into your Starship configuration.

Dark themes get accessibility corrections (saturation boost, brightness
ceiling, contrast floor) so prompt segments stay readable; light themes
pass through untouched.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. missing template, failed ghostty invocation)
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelInfo
		if verbose {
			level = logging.LevelDebug
		}
		logging.Init(level, os.Stderr)
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "starsync version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
