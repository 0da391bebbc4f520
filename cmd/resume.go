package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/trk/internal/journal"
)

var resumeAgo time.Duration

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a paused session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		sheet, ok, err := loadSheet(cmd, st)
		if err != nil || !ok {
			return err
		}
		if resolveOutcome(cmd, sheet.Resume(tsFromAgo(resumeAgo)), "No session to resume.") {
			logEntry(journal.Entry{
				Event:     journal.EventResumed,
				SessionID: lastSessionID(sheet),
			})
			cmd.Println("Resumed.")
		}
		return st.Save(sheet)
	},
}

func init() {
	resumeCmd.Flags().DurationVar(&resumeAgo, "ago", 0, "resume the session this long ago (e.g. 5m)")
	rootCmd.AddCommand(resumeCmd)
}
