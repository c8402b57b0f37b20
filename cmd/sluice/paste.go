package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/sluice/internal/message"
)

func newPasteCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "paste [text]",
		Short: "Deliver text to the bound destination",
		Long: `Delivers text through the bound destination's pipeline: eligibility,
padding, focus, insert. With no argument the text is read from stdin.

  sluice paste "a.ts#L10"
  git log -1 --format=%H | sluice paste --link
  sluice paste --to terminal "make test"`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				b, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimRight(string(b), "\n")
			}

			resp, err := roundTrip(v, &message.Message{
				Type:   message.TypePaste,
				Source: defaultSource(),
				Kind:   v.GetString("to"),
				Text:   text,
				Link:   v.GetBool("link"),
			})
			if err != nil {
				return err
			}
			return printResult(resp)
		},
	}

	f := cmd.Flags()
	f.String("to", "", "destination kind (default: the active binding)")
	f.Bool("link", false, "mark the text as a locator link")
	addDialFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}
