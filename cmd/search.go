package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/booksage/booksage/internal/books"
	"github.com/booksage/booksage/internal/config"
	"github.com/booksage/booksage/internal/display"
	"github.com/booksage/booksage/internal/search"
)

func newSearchCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "One-shot book searches by genre, author, or title",
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a booksage.yaml config file")

	for _, st := range []search.SearchType{search.Genre, search.Author, search.Title} {
		cmd.AddCommand(newSearchTypeCmd(st, &configPath))
	}

	return cmd
}

func newSearchTypeCmd(st search.SearchType, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <term>", st),
		Short: fmt.Sprintf("Search for books by %s", st),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.TrimSpace(strings.Join(args, " "))
			if term == "" {
				return fmt.Errorf("search term must not be empty")
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			return runSearch(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.InOrStdin(), term, st)
		},
	}
}

// runSearch wires one refinement pass end to end: Google Books fetch,
// client-side filtering, the interactive "did you mean" loop, and
// rendering. Fetch errors surface to the caller untouched.
func runSearch(ctx context.Context, cfg *config.Config, out io.Writer, in io.Reader, term string, st search.SearchType) error {
	client := books.NewClient(cfg.APIURL, cfg.APIKey, cfg.MaxResults, cfg.RequestRate)
	refiner := search.NewRefiner(search.NewMatcher(cfg.GenreRules()), cfg.MatchCap)
	renderer := display.New(out)

	fetchFor := func(term string) search.FetchFunc {
		query := st.QueryPrefix() + term
		return func() ([]books.Volume, error) {
			return client.Search(ctx, query)
		}
	}

	outcome, err := refiner.RefineInteractive(term, st, fetchFor, suggestionPrompt(out, in))
	if err != nil {
		return err
	}

	renderer.Outcome(outcome, st)
	return nil
}

// suggestionPrompt asks a y/n question on the terminal for each suggested
// term. Anything other than an explicit "y" declines.
func suggestionPrompt(out io.Writer, in io.Reader) search.ConfirmFunc {
	// Reuse an existing buffered reader so the menu loop and the prompt
	// never read ahead of each other on the same stream.
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}
	return func(term, suggestion string) bool {
		fmt.Fprintf(out, "\nNo results found for: %s\n", term)
		fmt.Fprintf(out, "Did you mean: %s? (y/n): ", suggestion)

		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(line), "y")
	}
}
