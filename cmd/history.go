package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/passaudit/internal/config"
	"github.com/dotcommander/passaudit/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the password reuse history",
	Long: `The history command manages the reuse history file. Passwords are
stored as bcrypt hashes, never cleartext; the reuse check compares
audited candidates against them.`,
}

var historyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Hash a password and append it to the history file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runHistoryAdd(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return nil
	},
}

var historyCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a password appears in the history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runHistoryCheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	historyCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	historyCmd.AddCommand(historyAddCmd)
	historyCmd.AddCommand(historyCheckCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryAdd() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	candidate, err := resolvePassword()
	if err != nil {
		return err
	}
	if candidate == "" {
		return fmt.Errorf("password cannot be empty")
	}

	h, err := history.Load(cfg.History)
	if err != nil {
		return err
	}
	if err := h.Add(candidate); err != nil {
		return err
	}

	if !cfg.Quiet {
		fmt.Printf("History updated: %s (%d entries)\n", cfg.History, h.Len())
	}
	return nil
}

func runHistoryCheck() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	candidate, err := resolvePassword()
	if err != nil {
		return err
	}
	if candidate == "" {
		return fmt.Errorf("password cannot be empty")
	}

	h, err := history.Load(cfg.History)
	if err != nil {
		return err
	}
	if h.Contains(candidate) {
		if !cfg.Quiet {
			fmt.Println("Found in history")
		}
		os.Exit(1)
	}

	if !cfg.Quiet {
		fmt.Println("Not found in history")
	}
	return nil
}
