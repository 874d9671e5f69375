package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	moviesCmd := &cobra.Command{
		Use:   "movies",
		Short: "Browse and manage movies",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all movies, newest first",
		RunE:  runMoviesList,
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single movie",
		Args:  cobra.ExactArgs(1),
		RunE:  runMoviesGet,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a movie (admin)",
		Args:  cobra.ExactArgs(1),
		RunE:  runMoviesDelete,
	}

	moviesCmd.AddCommand(listCmd)
	moviesCmd.AddCommand(getCmd)
	moviesCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(moviesCmd)
}

func runMoviesList(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL, password())
	movies, err := client.Movies()
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(movies)
		return nil
	}

	if len(movies) == 0 {
		fmt.Println("No movies in catalog")
		return nil
	}

	fmt.Printf("Movies (%d):\n\n", len(movies))
	fmt.Printf("  %-5s │ %-40s │ %-6s │ %s\n", "ID", "TITLE", "YEAR", "RATING")
	fmt.Println("────────┼──────────────────────────────────────────┼────────┼───────")
	for _, m := range movies {
		title := m.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Printf("  %-5d │ %-40s │ %-6d │ %.1f\n", m.ID, title, m.Year, m.Rating)
	}
	return nil
}

func runMoviesGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id: %s", args[0])
	}

	client := NewClient(serverURL, password())
	m, err := client.Movie(id)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(m)
		return nil
	}

	fmt.Printf("Title:       %s\n", m.Title)
	fmt.Printf("Year:        %d\n", m.Year)
	fmt.Printf("Genre:       %s\n", m.Genre)
	fmt.Printf("Rating:      %.1f\n", m.Rating)
	fmt.Printf("Quality:     %s\n", m.Quality)
	fmt.Printf("Poster:      %s\n", m.Poster)
	fmt.Printf("Description: %s\n", m.Description)
	printLinks(m.DownloadLinks)
	return nil
}

func runMoviesDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id: %s", args[0])
	}

	client := NewClient(serverURL, password())
	if err := client.DeleteMovie(id); err != nil {
		return err
	}
	fmt.Printf("Movie %d deleted\n", id)
	return nil
}

func printLinks(links DownloadLinks) {
	if links.P480 != "" {
		fmt.Printf("480p:        %s\n", links.P480)
	}
	if links.P720 != "" {
		fmt.Printf("720p:        %s\n", links.P720)
	}
	if links.P1080 != "" {
		fmt.Printf("1080p:       %s\n", links.P1080)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
