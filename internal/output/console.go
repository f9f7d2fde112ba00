package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/passaudit/internal/analyzer"
	"github.com/dotcommander/passaudit/internal/types"
)

// ConsoleFormatter formats output for console display
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: true,
	}
}

// Format formats a single password report for console output
func (f *ConsoleFormatter) Format(report *analyzer.Report) error {
	if f.quiet {
		// Only the exit code matters in quiet mode
		return nil
	}

	f.printLabel(report)
	fmt.Printf("Score: %d/%d\n", report.Score.Score, report.Score.Total)
	fmt.Printf("Entropy: %.1f bits\n", report.Score.Entropy)

	if len(report.Findings) > 0 {
		fmt.Println("\nFailed checks:")
		for _, finding := range report.Findings {
			f.printFinding(finding)
		}
	}

	if f.verbose {
		fmt.Println("\nAll checks:")
		for _, d := range report.Score.Details {
			status := "✓"
			if !d.Passed {
				status = "✗"
			}
			fmt.Printf("  %s %-12s %s\n", status, d.ID, d.Name)
		}
	}

	if report.Suggestion != "" {
		fmt.Printf("\nSuggested password: %s\n", report.Suggestion)
	}

	return nil
}

// FormatSummary formats a batch summary for console output
func (f *ConsoleFormatter) FormatSummary(summary *analyzer.Summary) error {
	if f.quiet {
		return nil
	}

	for _, report := range summary.Results {
		hasIssues := len(report.Findings) > 0
		if !hasIssues && !f.verbose {
			continue
		}

		status := "✓"
		if !report.Score.Strong {
			status = "✗"
		}

		var style lipgloss.Style
		if f.colorize {
			if report.Score.Strong {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
			} else {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
			}
		}

		fmt.Printf("%s %s (%s, %d/%d)\n", style.Render(status), report.Masked,
			report.Score.Label, report.Score.Score, report.Score.Total)
		for _, finding := range report.Findings {
			f.printFinding(finding)
		}
	}

	fmt.Printf("\n%d/%d strong, %d weak (%v)\n",
		summary.Total-summary.WeakCount, summary.Total, summary.WeakCount,
		summary.Duration.Round(time.Millisecond))

	if summary.WeakCount == 0 {
		f.printConclusion()
	}

	return nil
}

// printLabel prints the strength label with color by rank
func (f *ConsoleFormatter) printLabel(report *analyzer.Report) {
	label := report.Score.Label
	if !f.colorize {
		fmt.Printf("Strength: %s\n", label)
		return
	}

	var style lipgloss.Style
	switch {
	case types.LabelRank(label) >= types.LabelRank(types.LabelStrong):
		style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // green
	case label == types.LabelModerate:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	default:
		style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")) // red
	}
	fmt.Printf("Strength: %s\n", style.Render(label))
}

// printFinding prints a finding with appropriate styling
func (f *ConsoleFormatter) printFinding(finding types.Finding) {
	var style lipgloss.Style
	if f.colorize {
		switch finding.Severity {
		case types.SeverityError:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
		case types.SeverityWarning:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
		default:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("7")) // gray
		}
	}

	prefix := "    "
	switch finding.Severity {
	case types.SeverityError:
		prefix = "    ✘ "
	case types.SeverityWarning:
		prefix = "    ⚠ "
	}

	fmt.Printf("%s%s: %s\n", prefix, style.Render(finding.Check), finding.Message)
}

// printConclusion prints the all-clear message
func (f *ConsoleFormatter) printConclusion() {
	if f.colorize {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
		fmt.Printf("%s\n", style.Render("✓ All passed"))
	} else {
		fmt.Println("✓ All passed")
	}
}
