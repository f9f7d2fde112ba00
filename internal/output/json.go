package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/passaudit/internal/analyzer"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	quiet      bool
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(quiet bool, indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		quiet:      quiet,
		indent:     indent,
		outputFile: outputFile,
	}
}

// Format formats a single report as JSON
func (f *JSONFormatter) Format(report *analyzer.Report) error {
	return f.write(JSONReport{
		Header:  newHeader(),
		Results: []JSONResult{newResult(report)},
	})
}

// FormatSummary formats a batch summary as JSON
func (f *JSONFormatter) FormatSummary(summary *analyzer.Summary) error {
	report := JSONReport{
		Header: newHeader(),
		Summary: &JSONSummary{
			Total:    summary.Total,
			Strong:   summary.Total - summary.WeakCount,
			Weak:     summary.WeakCount,
			Duration: summary.Duration.Round(time.Millisecond).String(),
		},
		Results: make([]JSONResult, len(summary.Results)),
	}
	for i, r := range summary.Results {
		report.Results[i] = newResult(r)
	}
	return f.write(report)
}

func (f *JSONFormatter) write(report JSONReport) error {
	if f.quiet {
		// Only the exit code matters in quiet mode
		return nil
	}

	var jsonBytes []byte
	var err error

	if f.indent {
		jsonBytes, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
	} else {
		fmt.Println(string(jsonBytes))
	}

	return nil
}

func newHeader() JSONHeader {
	return JSONHeader{
		Tool:      "passaudit",
		Version:   "1.0.0",
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

func newResult(report *analyzer.Report) JSONResult {
	result := JSONResult{
		Password:   report.Masked,
		Label:      report.Score.Label,
		Score:      report.Score.Score,
		Total:      report.Score.Total,
		Entropy:    report.Score.Entropy,
		Strong:     report.Score.Strong,
		Suggestion: report.Suggestion,
	}
	for _, finding := range report.Findings {
		result.Findings = append(result.Findings, JSONFinding{
			Check:    finding.Check,
			Message:  finding.Message,
			Severity: finding.Severity,
			Source:   finding.Source,
		})
	}
	return result
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Summary *JSONSummary `json:"summary,omitempty"`
	Results []JSONResult `json:"results"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary contains batch statistics
type JSONSummary struct {
	Total    int    `json:"total"`
	Strong   int    `json:"strong"`
	Weak     int    `json:"weak"`
	Duration string `json:"duration"`
}

// JSONResult represents a single password's audit result
type JSONResult struct {
	Password   string        `json:"password"`
	Label      string        `json:"label"`
	Score      int           `json:"score"`
	Total      int           `json:"total"`
	Entropy    float64       `json:"entropy"`
	Strong     bool          `json:"strong"`
	Findings   []JSONFinding `json:"findings,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
}

// JSONFinding represents a failed check
type JSONFinding struct {
	Check    string `json:"check"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Source   string `json:"source,omitempty"`
}
