package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample catalog data (admin)",
	Long: `Insert sample catalog data through the admin API.

Creates two sample movies and one sample series with two episodes.
Existing data is left untouched; running seed twice creates duplicates.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

type seedLinks struct {
	P480  string `json:"p480,omitempty"`
	P720  string `json:"p720,omitempty"`
	P1080 string `json:"p1080,omitempty"`
}

type seedMovie struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Genre         string    `json:"genre"`
	Year          int       `json:"year"`
	Poster        string    `json:"poster"`
	Previews      []string  `json:"previews"`
	DownloadLinks seedLinks `json:"downloadLinks"`
}

type seedSeries struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       string   `json:"genre"`
	Year        int      `json:"year"`
	Poster      string   `json:"poster"`
	Previews    []string `json:"previews"`
}

type seedEpisode struct {
	Title         string    `json:"title"`
	EpisodeNumber int       `json:"episodeNumber"`
	DownloadLinks seedLinks `json:"downloadLinks"`
}

var sampleMovies = []seedMovie{
	{
		Title:       "Sample Movie 1: Planet Adventure",
		Description: "A thrilling adventure on a distant planet.",
		Genre:       "Sci-Fi",
		Year:        2024,
		Poster:      "https://via.placeholder.com/300x450.png?text=Movie+Poster+1",
		Previews: []string{
			"https://via.placeholder.com/800x450.png?text=Preview+1",
			"https://via.placeholder.com/800x450.png?text=Preview+2",
		},
		DownloadLinks: seedLinks{
			P480:  "https://shrinkme.io/sample_movie1_480p",
			P720:  "https://shrinkme.io/sample_movie1_720p",
			P1080: "https://shrinkme.io/sample_movie1_1080p",
		},
	},
	{
		Title:       "Sample Movie 2: City Detectives",
		Description: "Two detectives solve a mystery in a neon-lit city.",
		Genre:       "Crime",
		Year:        2023,
		Poster:      "https://via.placeholder.com/300x450.png?text=Movie+Poster+2",
		Previews: []string{
			"https://via.placeholder.com/800x450.png?text=Preview+A",
			"https://via.placeholder.com/800x450.png?text=Preview+B",
			"https://via.placeholder.com/800x450.png?text=Preview+C",
			"https://via.placeholder.com/800x450.png?text=Preview+D",
		},
		DownloadLinks: seedLinks{
			P480: "https://shrinkme.io/sample_movie2_480p",
			P720: "https://shrinkme.io/sample_movie2_720p",
		},
	},
}

var sampleSeriesData = seedSeries{
	Title:       "Sample Series: The Lost Kingdom",
	Description: "An epic fantasy series about a lost kingdom.",
	Genre:       "Fantasy",
	Year:        2025,
	Poster:      "https://via.placeholder.com/300x450.png?text=Series+Poster",
	Previews: []string{
		"https://via.placeholder.com/800x450.png?text=Series+Preview+1",
		"https://via.placeholder.com/800x450.png?text=Series+Preview+2",
	},
}

var sampleEpisodes = []seedEpisode{
	{
		Title:         "The Beginning",
		EpisodeNumber: 1,
		DownloadLinks: seedLinks{
			P480:  "https://shrinkme.io/series1_ep1_480p",
			P720:  "https://shrinkme.io/series1_ep1_720p",
			P1080: "https://shrinkme.io/series1_ep1_1080p",
		},
	},
	{
		Title:         "The Journey",
		EpisodeNumber: 2,
		DownloadLinks: seedLinks{
			P720: "https://shrinkme.io/series1_ep2_720p",
		},
	},
}

func runSeed(cmd *cobra.Command, args []string) error {
	if password() == "" {
		return fmt.Errorf("no admin password: use --admin-password or set REELCAT_ADMIN_PASSWORD")
	}

	client := NewClient(serverURL, password())

	for _, m := range sampleMovies {
		created, err := client.CreateMovie(m)
		if err != nil {
			return fmt.Errorf("seed movie %q: %w", m.Title, err)
		}
		fmt.Printf("Created movie %d: %s\n", created.ID, created.Title)
	}

	sr, err := client.CreateSeries(sampleSeriesData)
	if err != nil {
		return fmt.Errorf("seed series %q: %w", sampleSeriesData.Title, err)
	}
	fmt.Printf("Created series %d: %s\n", sr.ID, sr.Title)

	for _, e := range sampleEpisodes {
		created, err := client.CreateEpisode(sr.ID, e)
		if err != nil {
			return fmt.Errorf("seed episode %q: %w", e.Title, err)
		}
		fmt.Printf("Created episode %d: %s\n", created.ID, created.Title)
	}

	fmt.Println("Catalog seeded")
	return nil
}
