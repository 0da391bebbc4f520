package report

import (
	"fmt"
	"os/exec"
)

// Tidy normalizes the rendered document in place using html-tidy.
// Failure is non-fatal: the caller logs the returned error as a warning
// and keeps the unformatted document.
func Tidy(path, tidyPath string) error {
	if tidyPath == "" {
		tidyPath = "tidy"
	}
	cmd := exec.Command(tidyPath, "--tidy-mark", "no", "-i", "-m", path)
	if err := cmd.Run(); err != nil {
		// tidy exits 1 for warnings while still rewriting the file.
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return nil
		}
		return fmt.Errorf("%s failed: %w", tidyPath, err)
	}
	return nil
}
