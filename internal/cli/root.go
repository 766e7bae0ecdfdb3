package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mira/kith/internal/app"
	"github.com/mira/kith/internal/assistant"
	"github.com/mira/kith/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "kith",
	Short: "A personal contact and birthday assistant",
	Long: `Kith keeps a directory of names, phone numbers and birthdays and
answers whose birthday is coming up, shifting weekend dates to the
following Monday.

Running kith opens an interactive assistant. On a terminal it uses a
full-screen prompt; when input is piped (or with --plain) it reads
commands line by line from stdin. The directory lives in memory only
and is gone when the session ends.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}

		windowDays := a.Config.Birthdays.WindowDays
		if cmd.Flags().Changed("window") {
			windowDays, _ = cmd.Flags().GetInt("window")
			if windowDays < 0 {
				return fmt.Errorf("--window cannot be negative")
			}
		}
		assist := assistant.New(a.Contacts, windowDays)

		plain, _ := cmd.Flags().GetBool("plain")
		if plain || a.Config.UI.Plain || !term.IsTerminal(int(os.Stdin.Fd())) {
			return runPlainLoop(assist, os.Stdin, os.Stdout)
		}
		return tui.Run(assist)
	},
}

func buildApp(cmd *cobra.Command) (*app.App, error) {
	if cmd.Flags().Changed("config") {
		path, _ := cmd.Flags().GetString("config")
		return app.NewFromPath(path)
	}
	return app.New()
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().Bool("plain", false, "Read commands from stdin without the TUI")
	rootCmd.Flags().String("config", "", "Path to config file")
	rootCmd.Flags().Int("window", 0, "Default lookahead in days for the birthdays command")

	rootCmd.AddCommand(versionCmd)
}
