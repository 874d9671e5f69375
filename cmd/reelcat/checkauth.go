package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkAuthCmd = &cobra.Command{
	Use:   "check-auth",
	Short: "Verify the admin password against the server",
	RunE:  runCheckAuth,
}

func init() {
	rootCmd.AddCommand(checkAuthCmd)
}

func runCheckAuth(cmd *cobra.Command, args []string) error {
	if password() == "" {
		return fmt.Errorf("no admin password: use --admin-password or set REELCAT_ADMIN_PASSWORD")
	}

	client := NewClient(serverURL, password())
	resp, err := client.CheckAuth()
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	fmt.Println(resp.Message)
	return nil
}
