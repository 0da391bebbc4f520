package git

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// mockRunner returns canned output keyed on the first git argument.
func mockRunner(responses map[string]string, errs map[string]error) Runner {
	return func(workDir string, args ...string) (string, error) {
		key := strings.Join(args, " ")
		if err, ok := errs[key]; ok {
			return "", err
		}
		return responses[key], nil
	}
}

func TestAuthorName(t *testing.T) {
	c := &Client{Runner: mockRunner(map[string]string{
		"config user.name": "Ada Lovelace\n",
	}, nil)}
	name, err := c.AuthorName()
	if err != nil {
		t.Fatalf("AuthorName: %v", err)
	}
	if name != "Ada Lovelace" {
		t.Errorf("AuthorName = %q, want %q", name, "Ada Lovelace")
	}
}

func TestCommitMessage(t *testing.T) {
	c := &Client{Runner: mockRunner(map[string]string{
		"log --format=%B -n 1 abc123": "Fix the frobnicator\n\nLonger body.\n\n",
	}, nil)}
	msg, err := c.CommitMessage("abc123")
	if err != nil {
		t.Fatalf("CommitMessage: %v", err)
	}
	if msg != "Fix the frobnicator\n\nLonger body." {
		t.Errorf("CommitMessage = %q", msg)
	}
}

func TestCommitMessageError(t *testing.T) {
	boom := errors.New("no such commit")
	c := &Client{Runner: mockRunner(nil, map[string]error{
		"log --format=%B -n 1 nope": boom,
	})}
	if _, err := c.CommitMessage("nope"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped runner error, got %v", err)
	}
}

func TestCurrentBranch(t *testing.T) {
	c := &Client{Runner: mockRunner(map[string]string{
		"rev-parse --abbrev-ref HEAD": "feature/timer\n",
	}, nil)}
	branch, err := c.CurrentBranch()
	if err != nil {
		t.Fatalf("CurrentBranch: %v", err)
	}
	if branch != "feature/timer" {
		t.Errorf("CurrentBranch = %q", branch)
	}
}

func TestInstallHooks(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".git", "hooks"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := InstallHooks(root); err != nil {
		t.Fatalf("InstallHooks: %v", err)
	}
	if !HooksInstalled(root) {
		t.Fatal("HooksInstalled = false after install")
	}

	for _, name := range []string{"post-commit", "post-checkout"} {
		path := filepath.Join(root, ".git", "hooks", name)
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Mode()&0o100 == 0 {
			t.Errorf("%s is not executable: %v", name, info.Mode())
		}
	}

	// Install is idempotent over our own hooks.
	if err := InstallHooks(root); err != nil {
		t.Fatalf("second InstallHooks: %v", err)
	}
}

func TestInstallHooksRefusesForeignHook(t *testing.T) {
	root := t.TempDir()
	hooksDir := filepath.Join(root, ".git", "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		t.Fatal(err)
	}
	foreign := filepath.Join(hooksDir, "post-commit")
	if err := os.WriteFile(foreign, []byte("#!/bin/sh\necho mine\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := InstallHooks(root); err == nil {
		t.Fatal("expected error over foreign post-commit hook")
	}
	data, err := os.ReadFile(foreign)
	if err != nil || !strings.Contains(string(data), "echo mine") {
		t.Error("foreign hook was clobbered")
	}
}

func TestInstallHooksOutsideRepo(t *testing.T) {
	if err := InstallHooks(t.TempDir()); err == nil {
		t.Fatal("expected error outside a git repository")
	}
}
