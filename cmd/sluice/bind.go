package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/sluice/internal/message"
)

func newBindCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "bind <kind>",
		Short: "Bind a destination kind to a concrete resource",
		Long: `Binds a destination and makes it the active paste target.

  sluice bind terminal --pane %3
  sluice bind text-editor --doc file:///ws/a.ts
  sluice bind claude-code

Terminal binds name a tmux pane; editor binds name a document URI; AI panel
binds take no resource — the panel is a singleton.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			resp, err := roundTrip(v, &message.Message{
				Type:   message.TypeBind,
				Source: defaultSource(),
				Kind:   args[0],
				Pane:   v.GetString("pane"),
				DocURI: v.GetString("doc"),
			})
			if err != nil {
				return err
			}
			return printResult(resp)
		},
	}

	f := cmd.Flags()
	f.String("pane", "", "tmux pane target (terminal binds)")
	f.String("doc", "", "document URI (editor binds)")
	addDialFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}
