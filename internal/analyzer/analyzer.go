// Package analyzer orchestrates wordlists, checks, entropy, and scoring
// into password strength reports.
package analyzer

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dotcommander/passaudit/internal/checks"
	"github.com/dotcommander/passaudit/internal/config"
	"github.com/dotcommander/passaudit/internal/entropy"
	"github.com/dotcommander/passaudit/internal/generate"
	"github.com/dotcommander/passaudit/internal/history"
	"github.com/dotcommander/passaudit/internal/policy"
	"github.com/dotcommander/passaudit/internal/scoring"
	"github.com/dotcommander/passaudit/internal/types"
	"github.com/dotcommander/passaudit/internal/wordlist"
)

// Input identifies a candidate password and its context.
type Input struct {
	Password    string
	Username    string
	Email       string
	OldPassword string
}

// Report is the analysis outcome for one password.
type Report struct {
	Masked     string                `json:"password"`
	Score      scoring.StrengthScore `json:"score"`
	Findings   []types.Finding       `json:"findings,omitempty"`
	Suggestion string                `json:"suggestion,omitempty"`
}

// Summary aggregates the reports of a batch run.
type Summary struct {
	Results   []*Report
	Total     int
	WeakCount int
	StartTime time.Time
	Duration  time.Duration
}

// Analyzer wires policy, wordlists, dictionary, and history together.
type Analyzer struct {
	cfg    *config.Config
	pol    *policy.Policy
	common *wordlist.Set
	dict   *wordlist.Set
	hist   *history.History
	checks []checks.Check
}

// New builds an Analyzer from configuration, loading the policy and word
// sets once so batch runs share them.
func New(cfg *config.Config) (*Analyzer, error) {
	pol := policy.Default()
	if cfg.Policy != "" {
		loaded, err := policy.Load(cfg.Policy)
		if err != nil {
			return nil, err
		}
		pol = loaded
	}

	common, err := wordlist.LoadCommon(cfg.Wordlists)
	if err != nil {
		return nil, fmt.Errorf("error loading common passwords: %w", err)
	}

	dict, err := wordlist.LoadDictionary(cfg.Dictionary, 3)
	if err != nil {
		return nil, fmt.Errorf("error loading dictionary: %w", err)
	}

	hist, err := history.Load(cfg.History)
	if err != nil {
		return nil, err
	}

	var enabled []checks.Check
	for _, c := range checks.Registry() {
		if pol.Enabled(c.ID) {
			enabled = append(enabled, c)
		}
	}

	return &Analyzer{
		cfg:    cfg,
		pol:    pol,
		common: common,
		dict:   dict,
		hist:   hist,
		checks: enabled,
	}, nil
}

// Checks returns the enabled checks in evaluation order.
func (a *Analyzer) Checks() []checks.Check {
	return a.checks
}

// Policy returns the effective policy.
func (a *Analyzer) Policy() *policy.Policy {
	return a.pol
}

// Analyze runs every enabled check and returns the report.
func (a *Analyzer) Analyze(in Input) (*Report, error) {
	if in.Password == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}

	ci := &checks.Input{
		Password:    in.Password,
		Username:    in.Username,
		Email:       in.Email,
		OldPassword: in.OldPassword,
		MinLength:   a.pol.MinLength,
		Forbidden:   a.pol.ForbiddenWords,
		Commons:     a.common,
		Dictionary:  a.dict,
		History:     a.hist,
	}

	var details []scoring.CheckMetric
	var findings []types.Finding
	for _, c := range a.checks {
		res := c.Run(ci)
		details = append(details, scoring.CheckMetric{
			ID:       c.ID,
			Name:     c.Name,
			Passed:   res.Passed,
			Severity: c.Severity,
			Source:   c.Source,
			Note:     res.Note,
		})
		if !res.Passed {
			msg := res.Note
			if msg == "" {
				msg = c.Name
			}
			findings = append(findings, types.Finding{
				Check:    c.ID,
				Message:  msg,
				Severity: c.Severity,
				Source:   c.Source,
			})
		}
	}

	score := scoring.NewStrengthScore(details, entropy.Bits(in.Password))

	report := &Report{
		Masked:   Mask(in.Password),
		Score:    score,
		Findings: findings,
	}

	if !score.Strong && a.pol.Suggest {
		if suggestion, err := generate.Memorable(); err == nil {
			report.Suggestion = suggestion
		}
	}

	return report, nil
}

// AnalyzeBatch audits many passwords with a bounded worker pool, preserving
// input order in the summary.
func (a *Analyzer) AnalyzeBatch(passwords []string) (*Summary, error) {
	summary := &Summary{
		Results:   make([]*Report, len(passwords)),
		Total:     len(passwords),
		StartTime: time.Now(),
	}

	workers := a.cfg.Concurrency
	if workers > len(passwords) {
		workers = len(passwords)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				report, err := a.Analyze(Input{Password: passwords[i]})
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = fmt.Errorf("line %d: %w", i+1, err)
					}
				} else {
					summary.Results[i] = report
				}
				mu.Unlock()
			}
		}()
	}

	for i := range passwords {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	for _, r := range summary.Results {
		if !r.Score.Strong {
			summary.WeakCount++
		}
	}
	summary.Duration = time.Since(summary.StartTime)

	return summary, nil
}

// FailsThreshold reports whether the report's label falls below the
// configured fail-below label.
func (a *Analyzer) FailsThreshold(r *Report) bool {
	return types.LabelRank(r.Score.Label) <= types.LabelRank(a.cfg.FailBelow)
}

// Mask hides a password for display, keeping the first character.
func Mask(password string) string {
	runes := []rune(password)
	if len(runes) <= 1 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-1)
}
