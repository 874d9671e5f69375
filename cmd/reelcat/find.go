package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/reelcat/pkg/match"
)

var findCmd = &cobra.Command{
	Use:   "find <title>...",
	Short: "Fuzzy-find a title across movies and series",
	Long: `Fuzzy-find a title across movies and series.

Matching happens client-side over the full catalog using Jaro-Winkler
similarity, so approximate titles work:

  reelcat find "blade runer"
  reelcat find amelie`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

// findEntry pairs a catalog row with its kind so results from both
// collections can be ranked together.
type findEntry struct {
	Kind  string `json:"kind"`
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year,omitempty"`
}

func runFind(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	client := NewClient(serverURL, password())

	movies, err := client.Movies()
	if err != nil {
		return fmt.Errorf("fetch movies: %w", err)
	}
	series, err := client.Series()
	if err != nil {
		return fmt.Errorf("fetch series: %w", err)
	}

	byTitle := make(map[string]findEntry, len(movies)+len(series))
	titles := make([]string, 0, len(movies)+len(series))
	for _, m := range movies {
		byTitle[m.Title] = findEntry{Kind: "movie", ID: m.ID, Title: m.Title, Year: m.Year}
		titles = append(titles, m.Title)
	}
	for _, s := range series {
		byTitle[s.Title] = findEntry{Kind: "series", ID: s.ID, Title: s.Title, Year: s.Year}
		titles = append(titles, s.Title)
	}

	ranked := match.Titles(query, titles)
	if len(ranked) == 0 {
		fmt.Printf("No match for %q\n", query)
		return nil
	}

	if jsonOutput {
		entries := make([]findEntry, len(ranked))
		for i, r := range ranked {
			entries[i] = byTitle[r.Title]
		}
		printJSON(entries)
		return nil
	}

	fmt.Printf("  %-6s │ %-5s │ %-40s │ %-6s │ %s\n", "KIND", "ID", "TITLE", "SCORE", "CONFIDENCE")
	fmt.Println("─────────┼───────┼──────────────────────────────────────────┼────────┼───────────")
	for _, r := range ranked {
		e := byTitle[r.Title]
		title := r.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Printf("  %-6s │ %-5d │ %-40s │ %.2f   │ %s\n", e.Kind, e.ID, title, r.Score, r.Confidence)
	}
	return nil
}
