package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/trk/internal/git"
	"github.com/fakeyudi/trk/internal/journal"
)

// gitClient is replaced in tests to avoid shelling out to git.
var gitClient = func() *git.Client {
	return &git.Client{WorkDir: "."}
}

var commitCmd = &cobra.Command{
	Use:   "commit <hash>",
	Short: "Record a commit in the timesheet",
	Long: `Records a commit event, starting a new session if none is
running. Normally invoked by the post-commit hook rather than by hand.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		sheet, ok, err := loadSheet(cmd, st)
		if err != nil || !ok {
			return err
		}
		hash := args[0]
		message, err := gitClient().CommitMessage(hash)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read commit message: %v\n", err)
		}
		if message == "" {
			cmd.Printf("No commit message found for commit %s.\n", hash)
		}
		if resolveOutcome(cmd, sheet.AddCommit(hash, message), "") {
			logEntry(journal.Entry{
				Event:     journal.EventCommitRecorded,
				SessionID: lastSessionID(sheet),
				Hash:      hash,
			})
			cmd.Printf("Commit %s recorded.\n", hash)
		}
		return st.Save(sheet)
	},
}

func init() {
	rootCmd.AddCommand(commitCmd)
}
