package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/trk/internal/journal"
)

var endAgo time.Duration

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "Finalize the running session",
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
		if resolveOutcome(cmd, sheet.EndSession(tsFromAgo(endAgo)), "No session to finalize.") {
			logEntry(journal.Entry{
				Event:     journal.EventSessionEnded,
				SessionID: lastSessionID(sheet),
				User:      sheet.User,
			})
			cmd.Println("Session ended.")
		}
		return st.Save(sheet)
	},
}

func init() {
	endCmd.Flags().DurationVar(&endAgo, "ago", 0, "end the session this long ago (e.g. 10m)")
	rootCmd.AddCommand(endCmd)
}
