// Package browser hands URLs to the desktop's default browser.
package browser

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// ErrUnsupportedPlatform is returned when no opener is known for the OS.
var ErrUnsupportedPlatform = errors.New("no browser opener for platform")

// Open starts the platform opener for url without waiting for it to exit.
func Open(url string) error {
	cmd, err := command(runtime.GOOS, url)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	// Reap the child once the opener exits.
	go func() { _ = cmd.Wait() }()
	return nil
}

func command(goos, url string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", url), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}
