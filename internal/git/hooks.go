package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// postCommitHook records every commit in the timesheet as it is made.
const postCommitHook = `#!/bin/sh
# installed by trk
trk commit "$(git rev-parse HEAD)"
`

// postCheckoutHook records branch switches. $3 is 1 for branch checkouts,
// 0 for file checkouts.
const postCheckoutHook = `#!/bin/sh
# installed by trk
if [ "$3" = "1" ]; then
    trk branch "$(git rev-parse --abbrev-ref HEAD)"
fi
`

var hooks = map[string]string{
	"post-commit":   postCommitHook,
	"post-checkout": postCheckoutHook,
}

// InstallHooks writes the trk git hooks into <root>/.git/hooks. An existing
// hook that was not written by trk is left alone and reported, so user
// hooks are never clobbered.
func InstallHooks(root string) error {
	hooksDir := filepath.Join(root, ".git", "hooks")
	if _, err := os.Stat(filepath.Join(root, ".git")); err != nil {
		return fmt.Errorf("not a git repository: %w", err)
	}
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return err
	}

	for name, content := range hooks {
		path := filepath.Join(hooksDir, name)
		if existing, err := os.ReadFile(path); err == nil {
			if strings.Contains(string(existing), "installed by trk") {
				continue // already ours
			}
			return fmt.Errorf("hook %s already exists and was not installed by trk", name)
		}
		if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
			return fmt.Errorf("writing %s hook: %w", name, err)
		}
	}
	return nil
}

// HooksInstalled reports whether all trk hooks are present.
func HooksInstalled(root string) bool {
	for name := range hooks {
		data, err := os.ReadFile(filepath.Join(root, ".git", "hooks", name))
		if err != nil || !strings.Contains(string(data), "installed by trk") {
			return false
		}
	}
	return true
}
