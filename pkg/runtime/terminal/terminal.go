package terminal

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/runtime/terminal/commands"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	flags   *commands.GlobalFlags
	output  io.Writer
	logs    io.Writer
	clock   func() time.Time
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// Logs receives the console logger output, stderr by default
	Logs  io.Writer
	Clock func() time.Time
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logs == nil {
		opts.Logs = os.Stderr
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	cli := &CLI{
		flags:  &commands.GlobalFlags{},
		output: opts.Output,
		logs:   opts.Logs,
		clock:  opts.Clock,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, used by tests
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "wellness",
		Short:         "Wellness statistics and report tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := zerolog.WarnLevel
			if cli.flags.Verbose {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: cli.logs, TimeFormat: time.RFC3339}).
				Level(level).
				With().Timestamp().Logger()
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
	}
	cmd.SetOut(cli.output)

	pf := cmd.PersistentFlags()
	pf.StringVarP(&cli.flags.ConfigPath, "config", "c", "", "Path to the settings file")
	pf.StringVar(&cli.flags.Source, "source", commands.SourceDuckDB, "Record source: duckdb or the path of a JSON export")
	pf.StringVarP(&cli.flags.User, "user", "u", "", "User id")
	pf.StringVar(&cli.flags.Now, "now", "", "Reference day in YYYY-MM-DD (defaults to today)")
	pf.BoolVarP(&cli.flags.Verbose, "verbose", "v", false, "Enable debug logging")

	runner := &commands.Runner{Flags: cli.flags, Clock: cli.clock}
	cmd.AddCommand(commands.NewStatsCmd(runner))
	cmd.AddCommand(commands.NewSummaryCmd(runner))
	cmd.AddCommand(commands.NewReportCmd(runner))
	cmd.AddCommand(commands.NewExportCmd(runner))
	cmd.AddCommand(commands.NewProfilesCmd(runner))
	cmd.AddCommand(commands.NewImportCmd(cli.flags))

	return cmd
}
