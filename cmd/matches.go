package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/xoxo/internal/match"
	"github.com/abhisek/xoxo/internal/ui/markdown"
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the available matches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-4s %-16s %-14s %s\n", "ID", "NAME", "COMPATIBILITY", "STATUS")
		for _, e := range catalog.Entries() {
			fmt.Fprintf(out, "%-4d %-16s %-14s %s\n", e.ID, e.Name, fmt.Sprintf("%d%%", e.Compatibility), entryStatus(e))
		}
		return nil
	},
}

var matchesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a match's profile and conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := findEntry(args[0])
		if err != nil {
			return err
		}
		user, _ := cmd.Flags().GetString("user")
		plain, _ := cmd.Flags().GetBool("plain")
		width, _ := cmd.Flags().GetInt("width")

		md := match.RenderMarkdown(e, user)
		if plain {
			fmt.Fprintln(cmd.OutOrStdout(), md)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), markdown.Render(md, width))
		return nil
	},
}

func init() {
	matchesShowCmd.Flags().String("user", "", "Name shown for your side of the conversation")
	matchesShowCmd.Flags().Bool("plain", false, "Print raw markdown")
	matchesShowCmd.Flags().Int("width", 80, "Wrap width")
	matchesCmd.AddCommand(matchesShowCmd)
}

func entryStatus(e match.Entry) string {
	switch {
	case e.PendingFor > 0:
		return "pending " + e.PendingFor.String()
	case !e.HasConversation():
		return "no messages"
	default:
		return fmt.Sprintf("%d messages", len(e.Conversation))
	}
}

func findEntry(name string) (match.Entry, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return match.Entry{}, err
	}
	e, ok := catalog.ByName(name)
	if !ok {
		names := make([]string, 0, catalog.Len())
		for _, e := range catalog.Entries() {
			names = append(names, e.Name)
		}
		return match.Entry{}, fmt.Errorf("no match named %q (available: %s)", name, strings.Join(names, ", "))
	}
	return e, nil
}
