package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/trk/internal/journal"
)

var beginAgo time.Duration

var beginCmd = &cobra.Command{
	Use:   "begin",
	Short: "Start a new work session",
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
		if resolveOutcome(cmd, sheet.NewSession(tsFromAgo(beginAgo)), "") {
			logEntry(journal.Entry{
				Event:     journal.EventSessionStarted,
				SessionID: lastSessionID(sheet),
				User:      sheet.User,
			})
			cmd.Println("Session started.")
		}
		return st.Save(sheet)
	},
}

func init() {
	beginCmd.Flags().DurationVar(&beginAgo, "ago", 0, "start the session this long ago (e.g. 30m)")
	rootCmd.AddCommand(beginCmd)
}
