// sluice: route text into bound paste destinations.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.klb.dev/sluice/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "sluice",
		Short: "Route text into bound paste destinations",
		Long: `sluice binds paste destinations — a tmux pane, an editor document, or an
AI chat panel — and delivers locator links or arbitrary text into whichever
one is bound, re-resolving the destination's focus target on every paste.

Run "sluice daemon" once per host. Use "sluice bind/unbind/paste/status" as
CLI tools; they talk to the daemon over a local socket, or over TCP with
--addr and a shared --token.

Config file search order (first found wins):
  /etc/sluice/sluice.toml
  $HOME/.config/sluice/sluice.toml
  path supplied via --config

All flags can be set via SLUICE_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newDaemonCmd(),
		newBindCmd(),
		newUnbindCmd(),
		newPasteCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("sluice %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(interactive bool, formatStr, levelStr string) {
	format := logging.ParseFormat(formatStr)
	level := logging.ParseLevel(levelStr)
	if levelStr == "" {
		if interactive {
			level = logging.ParseLevel("debug")
		} else {
			level = logging.ParseLevel("info")
		}
	}
	logging.Setup(format, level)
}
