package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/trk/internal/journal"
)

var noteAgo time.Duration

var noteCmd = &cobra.Command{
	Use:   "note <message>",
	Short: "Add a note to the running session",
	Long: `Adds a note event to the running session. While the session is
paused the note is merged into the pause instead.`,
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
		if resolveOutcome(cmd, sheet.Note(tsFromAgo(noteAgo), args[0]), "No session to add a note to.") {
			logEntry(journal.Entry{
				Event:     journal.EventNoteAdded,
				SessionID: lastSessionID(sheet),
				Note:      args[0],
			})
			cmd.Println("Note added.")
		}
		return st.Save(sheet)
	},
}

func init() {
	noteCmd.Flags().DurationVar(&noteAgo, "ago", 0, "record the note this long ago (e.g. 5m)")
	rootCmd.AddCommand(noteCmd)
}
