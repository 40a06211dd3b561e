package export

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/abhisek/xoxo/internal/logger"
)

// ErrUnsupportedURL is returned for links that are not http or https.
var ErrUnsupportedURL = errors.New("export: unsupported url")

// Opener opens a link outside the TUI.
type Opener interface {
	Open(link string) error
}

// Runner starts an external command without waiting for it.
type Runner func(name string, args ...string) error

// SystemOpener opens links with the platform's default handler.
type SystemOpener struct {
	GOOS string
	Run  Runner
}

// NewSystemOpener returns an opener for the running platform.
func NewSystemOpener() *SystemOpener {
	return &SystemOpener{GOOS: runtime.GOOS, Run: startDetached}
}

// Command returns the program and arguments used to open link.
func (o *SystemOpener) Command(link string) (string, []string) {
	switch o.GOOS {
	case "darwin":
		return "open", []string{link}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", link}
	default:
		return "xdg-open", []string{link}
	}
}

// Open validates link and launches the platform handler for it.
func (o *SystemOpener) Open(link string) error {
	if err := CheckURL(link); err != nil {
		return err
	}
	name, args := o.Command(link)
	if err := o.Run(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", link, err)
	}
	logger.Info("opened %s with %s", link, name)
	return nil
}

// CheckURL accepts absolute http and https links only.
func CheckURL(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrUnsupportedURL, link)
	}
	return nil
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
