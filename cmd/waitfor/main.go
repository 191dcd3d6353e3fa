// Command waitfor blocks until HTTP endpoints become ready, polling each one
// at a fixed interval within a wall-clock budget.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jzx17/gopoller/internal/waitfor"
	"github.com/jzx17/gopoller/pkg/poll"
)

// newLogger creates a text logger for CLI use.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

var rootCmd = &cobra.Command{
	Use:   "waitfor [url]",
	Short: "Wait until HTTP endpoints become ready",
	Long: `Wait until HTTP endpoints become ready.

waitfor polls each target at a fixed interval until its condition holds
(status code, body substring, or a JSON path value) or the time budget
runs out. Targets come from a single URL argument or a YAML file.

Examples:
  waitfor http://localhost:8080/healthz
  waitfor http://localhost:8080/stats --json-path queue.depth --equals 0
  waitfor -c targets.yaml --timeout 2m`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringP("config", "c", "", "path to a YAML target file")
	rootCmd.Flags().Duration("timeout", waitfor.DefaultTimeout, "total wall-clock budget per target")
	rootCmd.Flags().Duration("interval", waitfor.DefaultInterval, "delay between poll attempts")
	rootCmd.Flags().Int("status", waitfor.DefaultStatus, "expected HTTP status code")
	rootCmd.Flags().String("method", "GET", "HTTP method (GET, HEAD, POST)")
	rootCmd.Flags().String("contains", "", "require the response body to contain this substring")
	rootCmd.Flags().String("json-path", "", "JSON path to extract from the response body")
	rootCmd.Flags().String("equals", "", "expected value at --json-path")
	rootCmd.Flags().BoolP("verbose", "v", false, "log every suppressed transport error")
}

func run(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)

	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	for _, target := range cfg.Targets {
		logger.Info("waiting for target",
			"name", target.Name,
			"timeout", target.Timeout.Duration().String(),
			"interval", target.Interval.Duration().String(),
		)

		start := time.Now()
		res, err := waitfor.Wait(cmd.Context(), target, poll.NewSlogLogger(logger), nil)
		if err != nil {
			return err
		}

		logger.Info("target ready",
			"name", target.Name,
			"attempts", res.Attempts,
			"status", res.Value.StatusCode,
			"elapsed", time.Since(start).Round(time.Millisecond).String(),
		)
	}
	return nil
}

// buildConfig assembles targets from the YAML file or from flags plus the
// positional URL.
func buildConfig(cmd *cobra.Command, args []string) (*waitfor.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("either a url argument or --config may be given, not both")
		}
		return waitfor.Load(configFile)
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("a url argument or --config is required")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	interval, _ := cmd.Flags().GetDuration("interval")
	status, _ := cmd.Flags().GetInt("status")
	method, _ := cmd.Flags().GetString("method")
	contains, _ := cmd.Flags().GetString("contains")
	jsonPath, _ := cmd.Flags().GetString("json-path")
	equals, _ := cmd.Flags().GetString("equals")

	cfg := &waitfor.Config{
		Timeout:  waitfor.Duration(timeout),
		Interval: waitfor.Duration(interval),
		Targets: []waitfor.Target{{
			URL:      args[0],
			Method:   method,
			Status:   status,
			Contains: contains,
			JSONPath: jsonPath,
			Equals:   equals,
		}},
	}
	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}
