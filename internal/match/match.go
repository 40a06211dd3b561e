package match

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// Sender identifies who wrote a conversation message.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderMatch Sender = "match"
)

// Message is one line of a canned conversation.
type Message struct {
	Text   string `json:"text"`
	Sender Sender `json:"sender"`
}

// Entry is a candidate match with a precomputed score and transcript.
type Entry struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	AvatarRef      string    `json:"avatar"`
	Compatibility  int       `json:"compatibility"`
	Bio            string    `json:"bio"`
	Interests      []string  `json:"interests"`
	Conversation   []Message `json:"conversation"`
	TranscriptName string    `json:"transcript,omitempty"`
	MarketplaceURL string    `json:"marketplaceUrl,omitempty"`

	// PendingFor is how long after the match list opens the entry stays
	// provisional. Zero means the entry is available immediately.
	PendingFor time.Duration `json:"-"`
}

// Pending reports whether the entry is still provisional elapsed after the
// list was opened.
func (e Entry) Pending(elapsed time.Duration) bool {
	return elapsed < e.PendingFor
}

// RevealAt returns the wall time at which the entry becomes available,
// given the time the list was opened.
func (e Entry) RevealAt(opened time.Time) time.Time {
	return opened.Add(e.PendingFor)
}

// HasConversation reports whether the entry carries any messages.
func (e Entry) HasConversation() bool {
	return len(e.Conversation) > 0
}

// Transcript returns the transcript resource name for the entry. Entries
// without an explicit name get one derived from the two participants.
func (e Entry) Transcript(userName string) string {
	if e.TranscriptName != "" {
		return e.TranscriptName
	}
	if userName == "" {
		userName = "you"
	}
	return fmt.Sprintf("%s-%s-conversation.txt", slug.Make(userName), slug.Make(e.Name))
}

// clone returns a copy that shares no slices with e.
func (e Entry) clone() Entry {
	c := e
	c.Interests = slices.Clone(e.Interests)
	c.Conversation = slices.Clone(e.Conversation)
	return c
}

// Catalog is a read-only, ordered list of match entries.
type Catalog struct {
	version string
	entries []Entry
}

// NewCatalog builds a catalog from entries in the given order.
func NewCatalog(version string, entries []Entry) *Catalog {
	c := &Catalog{version: version, entries: make([]Entry, len(entries))}
	for i, e := range entries {
		c.entries[i] = e.clone()
	}
	return c
}

// Version returns the fixture format version the catalog was loaded from.
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of all entries in order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.clone()
	}
	return out
}

// ByID returns the entry with the given id.
func (c *Catalog) ByID(id int) (Entry, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return e.clone(), true
		}
	}
	return Entry{}, false
}

// ByName returns the entry whose name matches, ignoring case.
func (c *Catalog) ByName(name string) (Entry, bool) {
	for _, e := range c.entries {
		if strings.EqualFold(e.Name, name) {
			return e.clone(), true
		}
	}
	return Entry{}, false
}

// MaxPending returns the longest PendingFor across all entries.
func (c *Catalog) MaxPending() time.Duration {
	var longest time.Duration
	for _, e := range c.entries {
		if e.PendingFor > longest {
			longest = e.PendingFor
		}
	}
	return longest
}
