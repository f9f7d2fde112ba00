package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/dotcommander/passaudit/internal/analyzer"
	"github.com/dotcommander/passaudit/internal/config"
	"github.com/dotcommander/passaudit/internal/outputters"
)

var (
	password     string
	username     string
	email        string
	oldPassword  string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	failBelow    string
	policyFile   string
)

var rootCmd = &cobra.Command{
	Use:   "passaudit",
	Short: "Passaudit - a password strength auditor",
	Long: `Passaudit evaluates a password against length, character-class,
wordlist, pattern, and reuse criteria, estimates its entropy, and reports
a strength label with per-check feedback.

By default, passaudit audits a single password read from --password, a
stdin pipe, or an interactive no-echo prompt. Use the batch command to
audit a file of candidates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runAudit(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&password, "password", "p", "", "Password to audit (prompted when omitted)")
	rootCmd.Flags().StringVarP(&username, "username", "u", "", "Username for personal-information checks")
	rootCmd.Flags().StringVarP(&email, "email", "e", "", "Email for personal-information checks")
	rootCmd.Flags().StringVar(&oldPassword, "old-password", "", "Previous password for similarity checks")

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().StringVar(&failBelow, "fail-below", "weak", "Exit nonzero when strength is at or below this label")
	rootCmd.PersistentFlags().StringVar(&policyFile, "policy", "", "Policy file overriding the default thresholds")

	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("failBelow", rootCmd.PersistentFlags().Lookup("fail-below"))
	viper.BindPFlag("policy", rootCmd.PersistentFlags().Lookup("policy"))
}

func runAudit() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	candidate, err := resolvePassword()
	if err != nil {
		return err
	}

	a, err := analyzer.New(cfg)
	if err != nil {
		return err
	}

	report, err := a.Analyze(analyzer.Input{
		Password:    candidate,
		Username:    username,
		Email:       email,
		OldPassword: oldPassword,
	})
	if err != nil {
		return err
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(report); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if a.FailsThreshold(report) {
		os.Exit(1)
	}
	return nil
}

// resolvePassword reads the candidate from the flag, a stdin pipe, or an
// interactive no-echo prompt, in that order.
func resolvePassword() (string, error) {
	if password != "" {
		return password, nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("error reading password from stdin: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(os.Stderr, "Enter password to audit: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	return string(raw), nil
}
