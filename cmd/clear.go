package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fakeyudi/trk/internal/journal"
	"github.com/fakeyudi/trk/internal/timesheet"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset the timesheet, keeping the author name",
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
		fresh := timesheet.New(sheet.User, nil)
		fresh.SetShowCommits(sheet.ShowCommits)
		if sheet.Repo != "" {
			fresh.SetRepo(sheet.Repo)
		}
		if err := st.Save(fresh); err != nil {
			return err
		}
		logEntry(journal.Entry{Event: journal.EventSheetCleared, User: sheet.User})
		cmd.Println("Timesheet cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
