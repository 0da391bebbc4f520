package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fakeyudi/trk/internal/tui"
)

var viewFollow bool

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the timesheet in an interactive viewer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		if _, ok, err := loadSheet(cmd, st); err != nil || !ok {
			return err
		}
		return tui.Run(st, viewFollow)
	},
}

func init() {
	viewCmd.Flags().BoolVarP(&viewFollow, "follow", "f", false, "reload the view when the timesheet changes on disk")
	rootCmd.AddCommand(viewCmd)
}
