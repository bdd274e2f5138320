package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/booksage/booksage/internal/config"
	"github.com/booksage/booksage/internal/search"
)

func newMenuCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive book discovery menu",
		Long: `Runs BookSage as an interactive session: pick a search type from the
menu, enter a term, and repeat until you exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runMenu(cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a booksage.yaml config file")

	return cmd
}

var menuPrompts = map[int]struct {
	searchType search.SearchType
	prompt     string
}{
	1: {search.Genre, "Enter genre to search for: "},
	2: {search.Author, "Enter author name to search for: "},
	3: {search.Title, "Enter book title to search for: "},
}

func runMenu(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, "Welcome to BookSage!")
	fmt.Fprintln(out, "Your personal book discovery assistant")

	for {
		printMenu(out)

		choice, err := readChoice(reader, out)
		if err != nil {
			// stdin closed; treat like a normal exit
			break
		}
		if choice == 4 {
			break
		}

		entry := menuPrompts[choice]
		fmt.Fprintf(out, "\n%s", entry.prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		term := strings.TrimSpace(line)
		if term == "" {
			fmt.Fprintln(out, "Search term cannot be empty.")
			continue
		}

		if err := runSearch(cmd.Context(), cfg, out, reader, term, entry.searchType); err != nil {
			// API failures return to the menu rather than killing the session
			fmt.Fprintf(out, "Error searching for books: %v\n", err)
		}
	}

	fmt.Fprintln(out, "\nThank you for using BookSage. Goodbye!")
	return nil
}

func printMenu(out io.Writer) {
	rule := strings.Repeat("-", 40)
	fmt.Fprintf(out, "\n%s\n", rule)
	fmt.Fprintln(out, "Please select an option:")
	fmt.Fprintln(out, "1. Search by genre")
	fmt.Fprintln(out, "2. Search by author")
	fmt.Fprintln(out, "3. Search by book title")
	fmt.Fprintln(out, "4. Exit")
	fmt.Fprintln(out, rule)
}

// readChoice keeps prompting until it gets an integer between 1 and 4.
// It returns an error only when the reader is exhausted.
func readChoice(reader *bufio.Reader, out io.Writer) (int, error) {
	for {
		fmt.Fprint(out, "Enter your choice (1-4): ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return 0, err
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(out, "Invalid input. Please enter a number.")
			continue
		}
		if choice < 1 || choice > 4 {
			fmt.Fprintln(out, "Invalid selection. Please enter a number between 1 and 4.")
			continue
		}
		return choice, nil
	}
}
