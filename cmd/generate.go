package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/passaudit/internal/generate"
)

var (
	generateCount   int
	generateCharset bool
	generateLength  int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate password suggestions",
	Long: `The generate command prints password suggestions drawn from
crypto/rand.

The default memorable form combines an adjective, a noun, two digits, and
a symbol. With --charset, suggestions are random characters covering all
four character classes instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runGenerate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "Number of suggestions to print")
	generateCmd.Flags().BoolVar(&generateCharset, "charset", false, "Use random characters instead of the memorable form")
	generateCmd.Flags().IntVarP(&generateLength, "length", "l", 16, "Length of --charset suggestions")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate() error {
	if generateCount < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	for i := 0; i < generateCount; i++ {
		var suggestion string
		var err error
		if generateCharset {
			suggestion, err = generate.Random(generateLength)
		} else {
			suggestion, err = generate.Memorable()
		}
		if err != nil {
			return err
		}
		fmt.Println(suggestion)
	}
	return nil
}
