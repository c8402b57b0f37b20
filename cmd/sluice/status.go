package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/sluice/internal/message"
)

func newStatusCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show bindings and detected panels",
		Long: `Displays the daemon's current destination bindings and which configured AI
panels resolve on this host. The active binding — the one untargeted pastes
go to — is marked.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := roundTrip(v, &message.Message{
				Type:   message.TypeStatus,
				Source: defaultSource(),
			})
			if err != nil {
				return err
			}
			if v.GetBool("json") {
				enc, _ := json.MarshalIndent(resp, "", "  ")
				fmt.Println(string(enc))
				return nil
			}
			printStatus(resp)
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "output raw JSON")
	addDialFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func printStatus(resp *message.Message) {
	active := color.New(color.FgGreen, color.Bold)

	if len(resp.Bindings) == 0 {
		fmt.Println("No destinations bound.")
	} else {
		tw := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(tw, "\tKIND\tRESOURCE\tBOUND\tID\n")
		_, _ = fmt.Fprintf(tw, "\t----\t--------\t-----\t--\n")
		for _, b := range resp.Bindings {
			marker := ""
			if b.Active {
				marker = active.Sprint("*")
			}
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				marker, b.Kind, b.Resource, fmtAge(b.BoundAt), shortID(b.ID))
		}
		_ = tw.Flush()
	}

	if len(resp.Panels) > 0 {
		fmt.Println()
		tw := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(tw, "PANEL\tAVAILABLE\n")
		_, _ = fmt.Fprintf(tw, "-----\t---------\n")
		for _, p := range resp.Panels {
			avail := "no"
			if p.Available {
				avail = "yes"
			}
			_, _ = fmt.Fprintf(tw, "%s\t%s\n", p.Name, avail)
		}
		_ = tw.Flush()
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func fmtAge(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	age := time.Since(t).Round(time.Second)
	if age < time.Minute {
		return fmt.Sprintf("%ds ago", int(age.Seconds()))
	}
	if age < time.Hour {
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	}
	return t.Format("15:04:05")
}
