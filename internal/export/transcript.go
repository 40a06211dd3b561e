// Package export writes match transcripts to disk and hands marketplace
// links to the platform opener.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/xoxo/internal/logger"
	"github.com/abhisek/xoxo/internal/match"
)

// ErrNoDirectory is returned when a saver is built without a target directory.
var ErrNoDirectory = errors.New("export: no directory configured")

// Transcripts saves conversation transcripts into one directory.
type Transcripts struct {
	dir string
}

// NewTranscripts returns a saver that writes into dir. The directory is
// created on first save.
func NewTranscripts(dir string) (*Transcripts, error) {
	if dir == "" {
		return nil, ErrNoDirectory
	}
	return &Transcripts{dir: dir}, nil
}

// Path returns where the transcript for e would be written.
func (t *Transcripts) Path(e match.Entry, userName string) string {
	return filepath.Join(t.dir, e.Transcript(userName))
}

// Save renders the conversation between userName and e and writes it,
// replacing any earlier export. It returns the written path.
func (t *Transcripts) Save(e match.Entry, userName string) (string, error) {
	if err := os.MkdirAll(t.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := t.Path(e, userName)
	body := match.RenderTranscript(e, userName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}

	logger.Info("exported transcript for %s to %s", e.Name, path)
	return path, nil
}
