package cmd

import (
	"github.com/spf13/cobra"
)

var statusSheet bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the last session",
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
		if statusSheet {
			cmd.Print(sheet.Status())
			return nil
		}
		cmd.Print(sheet.LastSessionStatus())
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusSheet, "sheet", false, "show the whole timesheet instead of the last session")
	rootCmd.AddCommand(statusCmd)
}
