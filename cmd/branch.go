package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fakeyudi/trk/internal/journal"
)

var branchCmd = &cobra.Command{
	Use:   "branch [name]",
	Short: "Record the branch being worked on",
	Long: `Tags the running session with a branch name. With no argument the
current git branch is used. Does nothing if no session is running.
Normally invoked by the post-checkout hook.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		sheet, ok, err := loadSheet(cmd, st)
		if err != nil || !ok {
			return err
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		} else {
			name, err = gitClient().CurrentBranch()
			if err != nil {
				return err
			}
		}
		if name == "" {
			return nil
		}
		sheet.AddBranch(name)
		if last := sheet.LastSession(); last != nil && last.Running {
			logEntry(journal.Entry{
				Event:     journal.EventBranchTouched,
				SessionID: last.ID,
				Branch:    name,
			})
		}
		return st.Save(sheet)
	},
}

func init() {
	rootCmd.AddCommand(branchCmd)
}
