// scripts/gcal-auth/main.go
//
// Run this once locally to authorize Google Calendar access for OAuth desktop
// credentials and write the token the API server reads.
//
// Usage:
//
//	go run scripts/gcal-auth/main.go --credentials google-credentials.json --token token.json
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"smart-task-parser/pkg/gcalendar"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var credsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "gcal-auth",
		Short: "Authorize Google Calendar access and save an OAuth token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), credsPath, tokenPath)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&credsPath, "credentials", "google-credentials.json", "OAuth desktop app credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.DefaultTokenPath, "where to write the token")
	return cmd
}

func run(ctx context.Context, in io.Reader, out io.Writer, credsPath, tokenPath string) error {
	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("failed to read credentials file %q: %w", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return fmt.Errorf("failed to parse credentials (is %q an OAuth desktop app file?): %w", credsPath, err)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintln(out, "Step 1: open this URL in a browser and sign in with your Google account:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, authURL)
	fmt.Fprintln(out)
	fmt.Fprint(out, "Step 2: paste the authorization code here and press Enter: ")

	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("no authorization code entered")
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", tokenPath, err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Token saved to %s. Set google_calendar.token_path to it and restart the API server.\n", tokenPath)
	return nil
}
