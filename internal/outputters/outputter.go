package outputters

import (
	"fmt"

	"github.com/dotcommander/passaudit/internal/analyzer"
	"github.com/dotcommander/passaudit/internal/config"
	"github.com/dotcommander/passaudit/internal/output"
)

// Formatter renders single reports and batch summaries.
type Formatter interface {
	Format(report *analyzer.Report) error
	FormatSummary(summary *analyzer.Summary) error
}

// Outputter handles output formatting
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{
		config: config,
	}
}

// Format renders a single report using the configured format
func (o *Outputter) Format(report *analyzer.Report) error {
	formatter, err := o.formatter()
	if err != nil {
		return err
	}
	return formatter.Format(report)
}

// FormatSummary renders a batch summary using the configured format
func (o *Outputter) FormatSummary(summary *analyzer.Summary) error {
	formatter, err := o.formatter()
	if err != nil {
		return err
	}
	return formatter.FormatSummary(summary)
}

func (o *Outputter) formatter() (Formatter, error) {
	switch o.config.Format {
	case "console":
		return output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose), nil
	case "json":
		return output.NewJSONFormatter(o.config.Quiet, true, o.config.Output), nil
	case "markdown":
		return output.NewMarkdownFormatter(o.config.Quiet, o.config.Verbose, o.config.Output), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", o.config.Format)
	}
}
