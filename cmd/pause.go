package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/trk/internal/journal"
)

var (
	pauseAgo  time.Duration
	pauseNote string
)

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the running session",
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
		if resolveOutcome(cmd, sheet.Pause(tsFromAgo(pauseAgo), pauseNote), "No session to pause.") {
			logEntry(journal.Entry{
				Event:     journal.EventPaused,
				SessionID: lastSessionID(sheet),
				Note:      pauseNote,
			})
			cmd.Println("Paused.")
		}
		return st.Save(sheet)
	},
}

func init() {
	pauseCmd.Flags().DurationVar(&pauseAgo, "ago", 0, "pause the session this long ago (e.g. 5m)")
	pauseCmd.Flags().StringVarP(&pauseNote, "message", "m", "", "attach a note to the pause")
	rootCmd.AddCommand(pauseCmd)
}
