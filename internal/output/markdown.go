package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/passaudit/internal/analyzer"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	quiet      bool
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(quiet, verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		quiet:      quiet,
		verbose:    verbose,
		outputFile: outputFile,
	}
}

// Format formats a single report as Markdown
func (f *MarkdownFormatter) Format(report *analyzer.Report) error {
	var builder strings.Builder

	f.writeHeader(&builder)
	f.writeResult(&builder, report)

	return f.write(builder.String())
}

// FormatSummary formats a batch summary as Markdown
func (f *MarkdownFormatter) FormatSummary(summary *analyzer.Summary) error {
	var builder strings.Builder

	f.writeHeader(&builder)

	// Summary Table
	builder.WriteString("## Summary\n\n")
	builder.WriteString("| Metric | Count |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Passwords Audited | %d |\n", summary.Total))
	builder.WriteString(fmt.Sprintf("| Strong | %d |\n", summary.Total-summary.WeakCount))
	builder.WriteString(fmt.Sprintf("| Weak | %d |\n", summary.WeakCount))
	builder.WriteString("\n")

	// Detailed Results
	builder.WriteString("## Detailed Results\n\n")
	if summary.Total == 0 {
		builder.WriteString("*No passwords to audit.*\n")
	}
	for _, report := range summary.Results {
		if !f.verbose && report.Score.Strong {
			continue // Skip strong passwords unless verbose
		}
		builder.WriteString(fmt.Sprintf("### %s\n\n", report.Masked))
		f.writeResult(&builder, report)
	}

	return f.write(builder.String())
}

func (f *MarkdownFormatter) writeHeader(builder *strings.Builder) {
	builder.WriteString("# Passaudit Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(strings.Repeat("-", 50) + "\n\n")
}

func (f *MarkdownFormatter) writeResult(builder *strings.Builder, report *analyzer.Report) {
	builder.WriteString(fmt.Sprintf("Strength: **%s** %s\n\n", report.Score.Label, getStatusEmoji(report.Score.Strong)))
	builder.WriteString(fmt.Sprintf("Score: `%d/%d`\n\n", report.Score.Score, report.Score.Total))
	builder.WriteString(fmt.Sprintf("Entropy: `%.1f bits`\n\n", report.Score.Entropy))

	if len(report.Findings) > 0 {
		builder.WriteString("#### Failed Checks\n\n")
		for _, finding := range report.Findings {
			builder.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", finding.Check, finding.Severity, finding.Message))
		}
		builder.WriteString("\n")
	}

	if f.verbose {
		builder.WriteString("#### All Checks\n\n")
		builder.WriteString("| Check | Result | Source |\n")
		builder.WriteString("|-------|--------|--------|\n")
		for _, d := range report.Score.Details {
			builder.WriteString(fmt.Sprintf("| %s | %s | %s |\n", d.Name, getStatusEmoji(d.Passed), d.Source))
		}
		builder.WriteString("\n")
	}

	if report.Suggestion != "" {
		builder.WriteString(fmt.Sprintf("Suggested password: `%s`\n\n", report.Suggestion))
	}
}

func (f *MarkdownFormatter) write(content string) error {
	if f.quiet {
		// Only the exit code matters in quiet mode
		return nil
	}
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	fmt.Print(content)
	return nil
}

// getStatusEmoji returns the status emoji for a pass/fail state
func getStatusEmoji(passed bool) string {
	if passed {
		return "✅"
	}
	return "❌"
}
