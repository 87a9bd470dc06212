package panel

import (
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
)

// Opener shows a URL to the user outside the terminal.
type Opener interface {
	Open(url string) error
}

// BrowserOpener opens URLs in the desktop's default browser.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "opening %s", url)
	}
	// reap the launcher without blocking the panel
	go cmd.Wait()
	return nil
}
