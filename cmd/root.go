package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booksage",
		Short: "Book discovery assistant backed by the Google Books API",
		Long: `BookSage finds books by genre, author, or title.

Raw Google Books results are filtered and ranked client-side, and a typo'd
search term gets a "did you mean" suggestion built from the values observed
in the results.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newMenuCmd())

	return cmd
}
