package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/xoxo/internal/export"
	"github.com/abhisek/xoxo/internal/match"
)

var transcriptCmd = &cobra.Command{
	Use:   "transcript <name>",
	Short: "Export a match's conversation transcript",
	Long:  "Writes the conversation with the named match to a text file. Use --stdout to print it instead.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := findEntry(args[0])
		if err != nil {
			return err
		}
		user, _ := cmd.Flags().GetString("user")

		if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
			fmt.Fprint(cmd.OutOrStdout(), match.RenderTranscript(e, user))
			return nil
		}

		dir, _ := cmd.Flags().GetString("out")
		if dir == "" {
			dir = cfg.Export.Dir
		}
		t, err := export.NewTranscripts(dir)
		if err != nil {
			return err
		}
		path, err := t.Save(e, user)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Transcript saved to", path)
		return nil
	},
}

func init() {
	transcriptCmd.Flags().String("out", "", "Directory to write into (defaults to export.dir)")
	transcriptCmd.Flags().String("user", "", "Name shown for your side of the conversation")
	transcriptCmd.Flags().Bool("stdout", false, "Print the transcript instead of writing a file")
}
