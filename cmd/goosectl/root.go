package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/goosekit/internal/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	logDir  string

	// out receives command output; tests swap it for a buffer.
	out io.Writer = os.Stdout

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "goosectl",
	Short: "Inspect goosekit allocators and exercise containers",
	Long: `goosectl reports the optional capabilities goosekit detects on its
allocators and runs container workloads against them, printing the
allocation metrics each run produces.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		closer, err := logger.Init(logger.Options{
			Enabled: verbose,
			Output:  verboseOutput(),
			LogDir:  logDir,
			Level:   slog.LevelDebug,
			JSON:    jsonOut,
		})
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logCloser = closer
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser == nil {
			return nil
		}
		return logCloser.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&logDir, "log-dir", "", "Write debug logs to a daily file in this directory instead of stderr")
}

// verboseOutput sends debug logs to stderr unless a log directory was given.
func verboseOutput() io.Writer {
	if logDir != "" {
		return nil
	}
	return os.Stderr
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(out, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
