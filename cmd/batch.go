package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/passaudit/internal/analyzer"
	"github.com/dotcommander/passaudit/internal/config"
	"github.com/dotcommander/passaudit/internal/outputters"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Audit a newline-delimited file of passwords",
	Long: `The batch command audits every password in a file, one per line,
using a bounded worker pool. Blank lines are skipped.

The exit code is nonzero when any password falls at or below the
fail-below label.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runBatch(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(path string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	passwords, err := readLines(path)
	if err != nil {
		return err
	}
	if len(passwords) == 0 {
		return fmt.Errorf("no passwords found in %s", path)
	}

	a, err := analyzer.New(cfg)
	if err != nil {
		return err
	}

	summary, err := a.AnalyzeBatch(passwords)
	if err != nil {
		return err
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.FormatSummary(summary); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	for _, report := range summary.Results {
		if a.FailsThreshold(report) {
			os.Exit(1)
		}
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return lines, nil
}
