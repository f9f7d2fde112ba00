package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/passaudit/internal/analyzer"
	"github.com/dotcommander/passaudit/internal/checks"
	"github.com/dotcommander/passaudit/internal/config"
	"github.com/dotcommander/passaudit/internal/types"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered password checks",
	Long: `The rules command lists every check the auditor can run, with its
severity and rule source. Checks disabled by the active policy are
marked as disabled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runRules(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	a, err := analyzer.New(cfg)
	if err != nil {
		return err
	}

	enabled := make(map[string]bool)
	for _, c := range a.Checks() {
		enabled[c.ID] = true
	}

	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	for _, c := range checks.Registry() {
		severity := c.Severity
		switch c.Severity {
		case types.SeverityError:
			severity = errStyle.Render(c.Severity)
		case types.SeverityWarning:
			severity = warnStyle.Render(c.Severity)
		}

		line := fmt.Sprintf("%-12s %-8s %-22s %s", c.ID, severity, c.Source, c.Name)
		if !enabled[c.ID] {
			line = dimStyle.Render(line + " (disabled)")
		}
		fmt.Println(line)
	}

	return nil
}
