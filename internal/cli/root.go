package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wl-color-picker",
	Short: "Pick a pixel color from your Wayland session",
	Long: `wl-color-picker samples the color under a point you click, optionally lets
you adjust it in a color dialog, and emits the result as #rrggbb to stdout,
the clipboard, or both. Picks are recorded in a local history.`,
	Args: cobra.ArbitraryArgs,
	Run:  runPick,
	// The original tool ignored flags it did not know; keep that
	// permissiveness on the bare invocation.
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
