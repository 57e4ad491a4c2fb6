package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ernestocullari/audience-pathways/internal/cli"
	"github.com/ernestocullari/audience-pathways/internal/config"
	"github.com/ernestocullari/audience-pathways/internal/sheets"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with Google Sheets",
		Long: `Run the interactive OAuth2 flow for Google Sheets.

This command will:
1. Start a local callback server
2. Print a consent URL to open in your browser
3. Exchange the authorization code for a token
4. Print the refresh token to add to your config`,
		RunE: runAuth,
	}

	cmd.Flags().String("token-file", "~/.config/pathways/token.json", "where to save the token")
	return cmd
}

func runAuth(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	clientID := viper.GetString("sheets.client_id")
	if clientID == "" {
		clientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	}
	clientSecret := viper.GetString("sheets.client_secret")
	if clientSecret == "" {
		clientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	}

	if clientID == "" || clientSecret == "" {
		return fmt.Errorf("sheets.client_id and sheets.client_secret must be configured")
	}

	tokenFile, _ := cmd.Flags().GetString("token-file")

	token, err := sheets.AuthenticateInteractive(ctx, sheets.OAuth2Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenFile:    config.ExpandPath(tokenFile),
	})
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	fmt.Println(cli.FormatSuccess("Authenticated with Google Sheets"))
	if token.RefreshToken != "" {
		fmt.Println("Add this refresh token to your config as sheets.refresh_token:")
		fmt.Println(token.RefreshToken)
	}

	return nil
}
