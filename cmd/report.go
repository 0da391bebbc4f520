package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/trk/internal/report"
)

var (
	reportSince   int64
	reportAgo     time.Duration
	reportSession bool
	reportOpen    bool
	reportOut     string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the timesheet as an HTML report",
	Long: `Renders the timesheet (or only the last session, with --session)
to an HTML file, runs it through tidy when available, and opens it in
the configured viewer when attached to a terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		sheet, ok, err := loadSheet(cmd, st)
		if err != nil || !ok {
			return err
		}

		outDir := reportOut
		if outDir == "" {
			outDir = cfg.OutputDir
		}

		var path string
		if reportSession {
			if sheet.LastSession() == nil {
				cmd.Println("No session to report on.")
				return nil
			}
			path = filepath.Join(outDir, "session.html")
			err = report.WriteLastSession(sheet, path)
		} else {
			path = filepath.Join(outDir, "timesheet.html")
			var since *int64
			switch {
			case reportSince != 0:
				since = &reportSince
			case reportAgo != 0:
				ts := time.Now().Add(-reportAgo).Unix()
				since = &ts
			}
			err = report.WriteSheet(sheet, path, since)
		}
		if err != nil {
			return err
		}

		if err := report.Tidy(path, cfg.TidyPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: tidy failed: %v\n", err)
		}
		cmd.Printf("Report written to %s.\n", path)

		if reportOpen || term.IsTerminal(os.Stdout.Fd()) {
			if err := report.Open(path, cfg.Viewer); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not open report: %v\n", err)
			}
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().Int64Var(&reportSince, "since", 0, "only include sessions started after this unix timestamp")
	reportCmd.Flags().DurationVar(&reportAgo, "ago", 0, "only include sessions started within this duration (e.g. 168h)")
	reportCmd.Flags().BoolVar(&reportSession, "session", false, "report only the last session")
	reportCmd.Flags().BoolVar(&reportOpen, "open", false, "open the report in a browser")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "output directory (defaults to the configured output_dir)")
	rootCmd.AddCommand(reportCmd)
}
