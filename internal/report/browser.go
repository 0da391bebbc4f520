package report

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Open launches the rendered document in the user's viewer. An explicit
// viewer command from config takes precedence over the platform opener.
func Open(path, viewer string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if viewer == "" {
		viewer = platformOpener()
	}
	if err := exec.Command(viewer, abs).Start(); err != nil {
		return fmt.Errorf("could not open %s with %s: %w", abs, viewer, err)
	}
	return nil
}

func platformOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}
