package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL     string
	jsonOutput    bool
	adminPassword string
)

var rootCmd = &cobra.Command{
	Use:   "reelcat",
	Short: "CLI client for the reelcat media catalog",
	Long: `reelcat - CLI client for the reelcat media catalog

Browse movies and series, fuzzy-find titles, and manage
the catalog through the admin API.

Run 'reelcatd' to start the server daemon.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// password returns the admin password from the flag or the environment.
func password() string {
	if adminPassword != "" {
		return adminPassword
	}
	return os.Getenv("REELCAT_ADMIN_PASSWORD")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:5000", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&adminPassword, "admin-password", "", "Admin password (or set REELCAT_ADMIN_PASSWORD)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("reelcat {{.Version}}\n")
}
