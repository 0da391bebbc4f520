package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/trk/internal/git"
)

// executeCommand runs a cobra command with the given args and captures combined output.
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	_, err = root.ExecuteC()
	return buf.String(), err
}

// setupWorkspace points the command at a fresh temp project directory and an
// empty config home so tests never touch real state.
func setupWorkspace(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Flag variables keep their values between executions.
	initHooks = false
	beginAgo, endAgo, pauseAgo, resumeAgo, noteAgo = 0, 0, 0, 0, 0
	pauseNote = ""
	statusSheet = false
	reportSince, reportAgo = 0, 0
	reportSession, reportOpen = false, false
	reportOut = ""
	viewFollow = false
}

// stubGit replaces the git client with one backed by canned responses,
// keyed by the joined argument list.
func stubGit(t *testing.T, responses map[string]string) {
	t.Helper()
	orig := gitClient
	gitClient = func() *git.Client {
		return &git.Client{
			WorkDir: ".",
			Runner: func(workDir string, args ...string) (string, error) {
				key := strings.Join(args, " ")
				if out, ok := responses[key]; ok {
					return out, nil
				}
				return "", fmt.Errorf("unexpected git call: git %s", key)
			},
		}
	}
	t.Cleanup(func() { gitClient = orig })
}
