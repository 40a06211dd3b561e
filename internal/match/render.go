package match

import (
	"fmt"
	"strings"
)

// SpeakerName returns the display name of the author of msg.
func SpeakerName(e Entry, msg Message, userName string) string {
	if msg.Sender == SenderUser {
		if userName == "" {
			return "You"
		}
		return userName
	}
	return e.Name
}

// RenderTranscript formats the conversation as plain text, one message per line.
func RenderTranscript(e Entry, userName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Conversation with %s (%d%% compatible)\n\n", e.Name, e.Compatibility)
	if !e.HasConversation() {
		b.WriteString("No messages yet.\n")
		return b.String()
	}
	for _, m := range e.Conversation {
		fmt.Fprintf(&b, "%s: %s\n", SpeakerName(e, m, userName), m.Text)
	}
	return b.String()
}

// RenderMarkdown formats the entry's profile and conversation as markdown.
func RenderMarkdown(e Entry, userName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Name)
	fmt.Fprintf(&b, "**%d%% compatible**\n\n", e.Compatibility)
	b.WriteString("## About\n\n")
	b.WriteString(e.Bio)
	b.WriteString("\n\n## Interests\n\n")
	for _, tag := range e.Interests {
		fmt.Fprintf(&b, "- %s\n", tag)
	}
	b.WriteString("\n## Conversation\n\n")
	if !e.HasConversation() {
		b.WriteString("_No messages yet. Start the conversation!_\n")
		return b.String()
	}
	for _, m := range e.Conversation {
		fmt.Fprintf(&b, "> **%s:** %s\n>\n", SpeakerName(e, m, userName), m.Text)
	}
	return strings.TrimSuffix(b.String(), ">\n")
}
