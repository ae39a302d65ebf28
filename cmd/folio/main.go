// Package main provides the folioshell CLI application entry point.
// folioshell is a portfolio presented as a terminal session, with a full-screen TUI, a
// line-oriented shell and a batch runner.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"folioshell/internal/config"
	"folioshell/internal/linemode"
	"folioshell/internal/logger"
	"folioshell/internal/terminal"
	"folioshell/internal/tui"
	"folioshell/internal/version"
)

var (
	logLevel   string
	logFile    string
	configFile string
	testMode   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folioshell - a portfolio you browse from a terminal",
	Long: `folioshell presents a developer portfolio as an interactive terminal session.
Type 'help' inside the session to see the available commands.`,
	RunE: runTUI, // Default behavior is the full-screen terminal
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the full-screen terminal",
	RunE:  runTUI,
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the line-oriented shell",
	Long:  `Start a readline prompt that prints output inline, for terminals without full-screen support.`,
	RunE:  runShell,
}

var execCmd = &cobra.Command{
	Use:   "exec [command]...",
	Short: "Run commands without interaction",
	Long: `Run each argument as a submitted command line and print the transcript as plain text.
With no arguments, command lines are read from standard input.
The exit status is non-zero when any line produced an error.`,
	RunE: runExec,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Current().Detailed())
	},
}

func main() {
	err := rootCmd.Execute()
	_ = logger.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Read settings from this YAML file")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")

	for _, name := range []string{"log-level", "log-file", "config", "test-mode"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// sessionOptions loads configuration and turns it into terminal options.
func sessionOptions() (*config.Config, terminal.Options, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, terminal.Options{}, err
	}
	opts := terminal.OptionsFromConfig(cfg)
	if viper.GetBool("test-mode") {
		opts.Typing = false
		opts.Cooldown = 0
		opts.Builtins.GitHub = nil
	}
	return cfg, opts, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM)
}

func runTUI(_ *cobra.Command, _ []string) error {
	if err := logger.RedirectToFile(filepath.Join(os.TempDir(), "folioshell.log")); err != nil {
		return fmt.Errorf("failed to redirect logs: %w", err)
	}

	cfg, opts, err := sessionOptions()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()
	opts.Context = ctx

	term := terminal.New(opts)
	logger.Info("Starting folioshell", "version", version.Version, "mode", "tui", "session", term.ID())
	return tui.Run(ctx, term, cfg.TypingInterval)
}

func runShell(_ *cobra.Command, _ []string) error {
	cfg, opts, err := sessionOptions()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()
	opts.Context = ctx

	term := terminal.New(opts)
	logger.Info("Starting folioshell", "version", version.Version, "mode", "shell", "session", term.ID())
	return linemode.Run(ctx, term, linemode.Options{
		Interval: cfg.TypingInterval,
	})
}

func runExec(cmd *cobra.Command, args []string) error {
	lines := args
	if len(lines) == 0 {
		var err error
		if lines, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	_, opts, err := sessionOptions()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	failures := execLines(ctx, opts, lines, cmd.OutOrStdout())
	if failures > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("%d command(s) failed", failures)
	}
	return nil
}

// execLines runs lines through a fresh session with animation and the submit cooldown disabled.
func execLines(ctx context.Context, opts terminal.Options, lines []string, out io.Writer) int {
	opts.Context = ctx
	opts.Typing = false
	opts.Cooldown = 0

	term := terminal.New(opts)
	logger.Debug("Running batch", "session", term.ID(), "lines", len(lines))
	if store := term.Store(); store != nil {
		store.Load(ctx)
	}
	return linemode.Batch(ctx, term, lines, out)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" && !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read commands: %w", err)
	}
	return lines, nil
}
