package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/trk/internal/git"
	"github.com/fakeyudi/trk/internal/journal"
	"github.com/fakeyudi/trk/internal/store"
	"github.com/fakeyudi/trk/internal/timesheet"
)

var initHooks bool

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Initialize a timesheet in the current directory",
	Long: `Creates a fresh timesheet. The author name is taken from the
argument, the configuration, or git's user.name, in that order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		if _, err := st.Load(); err == nil {
			cmd.Println("Timesheet is already initialized!")
			return nil
		} else if !errors.Is(err, store.ErrNoTimesheet) {
			return err
		}

		name := ""
		if len(args) == 1 {
			name = strings.TrimSpace(args[0])
		}
		if name == "" {
			name = cfg.Author
		}
		if name == "" {
			gitName, err := gitClient().AuthorName()
			if err == nil {
				name = gitName
			}
		}
		if name == "" {
			cmd.Println("Empty name not permitted. Please run 'trk init <name>'.")
			return nil
		}

		sheet := timesheet.New(name, nil)
		if cfg.ShowCommits != nil {
			sheet.SetShowCommits(*cfg.ShowCommits)
		}
		if err := st.Save(sheet); err != nil {
			return err
		}
		logEntry(journal.Entry{Event: journal.EventSheetInit, User: name})

		if initHooks {
			if err := git.InstallHooks("."); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not install git hooks: %v\n", err)
			} else {
				cmd.Println("Git hooks installed.")
			}
		}
		cmd.Printf("Timesheet initialized for %s.\n", name)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initHooks, "hooks", false, "install git hooks that record commits and branch switches")
	rootCmd.AddCommand(initCmd)
}
