package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kaan0d/excel-file-comparison/internal/compare"
	"github.com/kaan0d/excel-file-comparison/internal/loader"
	"github.com/kaan0d/excel-file-comparison/internal/logging"
	"github.com/kaan0d/excel-file-comparison/internal/report"
	"github.com/kaan0d/excel-file-comparison/internal/settings"
	"github.com/kaan0d/excel-file-comparison/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type globalOptions struct {
	settingsPath string
	logLevel     string
	verbose      bool
	quiet        bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}
	var logFile string

	root := &cobra.Command{
		Use:   "excel-file-comparison",
		Short: "Compare two spreadsheet exports row by row",
		Long: `Loads two .xlsx or .csv files, aligns their rows by a configurable
key column and reports which rows are missing on either side. Detailed
mode additionally compares the configured value columns for rows present
in both files. Run without arguments for the interactive UI.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := logging.ResolveLevel(opts.logLevel, opts.verbose, opts.quiet)

			// The alternate screen owns the terminal, so logs only go to
			// a file and only when one was asked for.
			logger := zerolog.Nop()
			if logFile != "" {
				var closeLog func()
				logger, closeLog = logging.NewFile(logFile, level)
				defer closeLog()
			}

			manager := settings.NewManager(opts.settingsPath)
			if err := manager.Load(); err != nil {
				logger.Warn().Err(err).Str("path", manager.Path()).Msg("settings not loaded, using defaults")
			}

			p := tea.NewProgram(ui.InitialModel(manager, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err := p.Run()
			return err
		},
	}

	root.PersistentFlags().StringVar(&opts.settingsPath, "settings", "", "settings file (default: excel_compare_settings.json next to the executable)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "warnings and errors only")
	root.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the UI is running")

	root.AddCommand(newCompareCommand(opts))
	root.AddCommand(newVersionCommand())

	return root
}

func newCompareCommand(opts *globalOptions) *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "compare <file1> <file2>",
		Short: "Run a comparison without the interactive UI",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := logging.ResolveLevel(opts.logLevel, opts.verbose, opts.quiet)
			logger := logging.NewConsole(cmd.ErrOrStderr(), level)

			manager := settings.NewManager(opts.settingsPath)
			if err := manager.Load(); err != nil {
				logger.Warn().Err(err).Str("path", manager.Path()).Msg("settings not loaded, using defaults")
			}

			a, err := loader.ReadSheet(args[0])
			if err != nil {
				return err
			}
			b, err := loader.ReadSheet(args[1])
			if err != nil {
				return err
			}

			result := compare.Compare(a, b, manager.Settings(), detailed)
			logger.Debug().
				Int("missing", len(result.Missing)).
				Int("extra", len(result.Extra)).
				Int("diffs", len(result.Diffs)).
				Msg("comparison complete")

			fmt.Fprint(cmd.OutOrStdout(), report.Render(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "also compare the incoming, outgoing and remaining columns")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "excel-file-comparison %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	}
}
