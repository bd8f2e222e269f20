// snake is a classic grid snake game for a desktop window or a terminal.
//
// Usage:
//
//	snake                    - Play in a window
//	snake play [frontend]    - Play with the given frontend (window, terminal)
//	snake frontends          - List available frontends
//	snake config init [path] - Write a starter config file
//	snake config show        - Print the config that would be used
//
// Global flags:
//
//	--config <path>     - Config file (default: search ./config.json, ./config.yaml, ~/.snake/config.yaml)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Append logs to a file instead of stderr
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat apples, grow, don't hit the walls",
	Long: `Snake is the classic grid game. Steer with the arrow keys, eat the red
apples to grow and score, and avoid the walls and your own tail.

Available commands:
  play       - Play with a specific frontend (default: window)
  frontends  - Show all available frontends
  config     - Create or inspect the config file

Examples:
  snake
  snake play terminal
  snake play window --seed 42
  snake config init`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (YAML or JSON)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the application logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	}), nil
}
