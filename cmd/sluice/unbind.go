package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/sluice/internal/message"
)

func newUnbindCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "unbind [kind]",
		Short: "Drop a destination binding",
		Long: `Drops the binding for the given kind. With no argument the active binding
is dropped.`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			kind := ""
			if len(args) == 1 {
				kind = args[0]
			}
			resp, err := roundTrip(v, &message.Message{
				Type:   message.TypeUnbind,
				Source: defaultSource(),
				Kind:   kind,
			})
			if err != nil {
				return err
			}
			return printResult(resp)
		},
	}

	addDialFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}
