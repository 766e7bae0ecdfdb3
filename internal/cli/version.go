package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags "-X github.com/mira/kith/internal/cli.version=..."
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the kith version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kith %s\n", version)
	},
}
