package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/trk/internal/config"
	"github.com/fakeyudi/trk/internal/journal"
	"github.com/fakeyudi/trk/internal/store"
	"github.com/fakeyudi/trk/internal/timesheet"
)

// cfg holds the merged configuration, populated in PersistentPreRunE.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "trk",
	Short: "Track work time against a git repository",
	Long: `trk records work sessions against the repository in the current
directory: pauses, resumes, notes, commits and branches, with derived
working/paused time summaries and an HTML report.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		global, err := config.LoadGlobal()
		if err != nil {
			return fmt.Errorf("loading global config: %w", err)
		}
		project, err := config.LoadProject(".")
		if err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
		cfg = config.Merge(global, project)
		return nil
	},
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetConfig returns the merged configuration for use by subcommands.
func GetConfig() config.Config {
	return cfg
}

// openStore constructs the project store in the current directory.
// Failure to create the state directory ends the interaction.
func openStore() (store.Store, error) {
	return store.NewStore(".")
}

// loadSheet loads the timesheet, translating a missing sheet into a user
// message. The bool reports whether a sheet was loaded.
func loadSheet(cmd *cobra.Command, st store.Store) (*timesheet.Timesheet, bool, error) {
	sheet, err := st.Load()
	if err != nil {
		if errors.Is(err, store.ErrNoTimesheet) {
			cmd.Println("No timesheet found. Run 'trk init' first.")
			return nil, false, nil
		}
		return nil, false, err
	}
	return sheet, true, nil
}

// resolveOutcome classifies the result of a core mutation. Fatal
// validation failures print their diagnostic and terminate with the
// neutral success code, without persisting. Recoverable failures are
// printed (missingMsg for a sheet without sessions) and reported false.
func resolveOutcome(cmd *cobra.Command, err error, missingMsg string) bool {
	switch {
	case err == nil:
		return true
	case timesheet.IsFatal(err):
		fmt.Printf("That is not a valid timestamp: %v.\n", errors.Unwrap(err))
		os.Exit(0)
		return false
	case errors.Is(err, timesheet.ErrNoSession) && missingMsg != "":
		cmd.Println(missingMsg)
		return false
	default:
		cmd.Printf("%s.\n", upperFirst(err.Error()))
		return false
	}
}

// logEntry appends to the activity journal; failures never block a command.
func logEntry(entry journal.Entry) {
	j, err := journal.New(".")
	if err == nil {
		err = j.Append(entry)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: journal write failed: %v\n", err)
	}
}

// lastSessionID returns the last session's id for journal entries.
func lastSessionID(sheet *timesheet.Timesheet) string {
	if last := sheet.LastSession(); last != nil {
		return last.ID
	}
	return ""
}

// tsFromAgo converts a relative --ago duration into an explicit timestamp.
// A zero duration means "now" (no explicit timestamp).
func tsFromAgo(ago time.Duration) *int64 {
	if ago == 0 {
		return nil
	}
	ts := time.Now().Add(-ago).Unix()
	return &ts
}

func upperFirst(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
