package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Change timesheet settings",
}

var setRepoCmd = &cobra.Command{
	Use:   "repo <url>",
	Short: "Set the repository URL used to link commits in reports",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		sheet, ok, err := loadSheet(cmd, st)
		if err != nil || !ok {
			return err
		}
		sheet.SetRepo(args[0])
		return st.Save(sheet)
	},
}

var setShowCommitsCmd = &cobra.Command{
	Use:   "show-commits <true|false>",
	Short: "Toggle commit events in reports",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		show, err := strconv.ParseBool(args[0])
		if err != nil {
			cmd.Printf("Expected true or false, got %q.\n", args[0])
			return nil
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		sheet, ok, err := loadSheet(cmd, st)
		if err != nil || !ok {
			return err
		}
		sheet.SetShowCommits(show)
		return st.Save(sheet)
	},
}

func init() {
	setCmd.AddCommand(setRepoCmd)
	setCmd.AddCommand(setShowCommitsCmd)
	rootCmd.AddCommand(setCmd)
}
