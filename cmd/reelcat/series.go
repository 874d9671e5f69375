package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	seriesCmd := &cobra.Command{
		Use:   "series",
		Short: "Browse and manage series",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all series, newest first",
		RunE:  runSeriesList,
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a series with its episodes",
		Args:  cobra.ExactArgs(1),
		RunE:  runSeriesGet,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a series and all its episodes (admin)",
		Args:  cobra.ExactArgs(1),
		RunE:  runSeriesDelete,
	}

	seriesCmd.AddCommand(listCmd)
	seriesCmd.AddCommand(getCmd)
	seriesCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(seriesCmd)
}

func runSeriesList(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL, password())
	series, err := client.Series()
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(series)
		return nil
	}

	if len(series) == 0 {
		fmt.Println("No series in catalog")
		return nil
	}

	fmt.Printf("Series (%d):\n\n", len(series))
	fmt.Printf("  %-5s │ %-40s │ %-9s │ %-8s │ %s\n", "ID", "TITLE", "STATUS", "SEASONS", "EPISODES")
	fmt.Println("────────┼──────────────────────────────────────────┼───────────┼──────────┼─────────")
	for _, s := range series {
		title := s.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Printf("  %-5d │ %-40s │ %-9s │ %-8d │ %d\n", s.ID, title, s.Status, s.Seasons, len(s.Episodes))
	}
	return nil
}

func runSeriesGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id: %s", args[0])
	}

	client := NewClient(serverURL, password())
	s, err := client.SeriesDetail(id)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(s)
		return nil
	}

	fmt.Printf("Title:       %s\n", s.Title)
	fmt.Printf("Year:        %d\n", s.Year)
	fmt.Printf("Genre:       %s\n", s.Genre)
	fmt.Printf("Status:      %s\n", s.Status)
	fmt.Printf("Seasons:     %d\n", s.Seasons)
	fmt.Printf("Rating:      %.1f\n", s.Rating)
	fmt.Printf("Description: %s\n", s.Description)

	if len(s.Episodes) == 0 {
		fmt.Println("\nNo episodes")
		return nil
	}

	fmt.Printf("\nEpisodes (%d):\n", len(s.Episodes))
	for _, e := range s.Episodes {
		fmt.Printf("  %2d. %s\n", e.EpisodeNumber, e.Title)
	}
	return nil
}

func runSeriesDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id: %s", args[0])
	}

	client := NewClient(serverURL, password())
	if err := client.DeleteSeries(id); err != nil {
		return err
	}
	fmt.Printf("Series %d and its episodes deleted\n", id)
	return nil
}
