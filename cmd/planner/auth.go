package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"smart-task-planner/pkg/gcalendar"
)

func newAuthCommand() *cobra.Command {
	var (
		credentialsPath string
		tokenPath       string
	)

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Calendar and write token.json",
		Long: `Auth walks through the OAuth consent for an OAuth Desktop client and stores
the token the server uses for its shared calendar.

Open the printed URL, sign in, then paste the authorization code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(credentialsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", credentialsPath, err)
			}

			oauthCfg, err := gcalendar.OAuthConfigFromJSON(data, "")
			if err != nil {
				return fmt.Errorf("%w (is %q an OAuth Desktop client file?)", err, credentialsPath)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, oauthCfg.AuthCodeURL("planner-cli", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "Authorization code: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			code = strings.TrimSpace(code)
			if code == "" {
				if err != nil {
					return fmt.Errorf("read authorization code: %w", err)
				}
				return fmt.Errorf("authorization code is empty")
			}

			tok, err := oauthCfg.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nToken saved to %s. Restart the server to use the shared calendar.\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&credentialsPath, "credentials", "credentials.json", "OAuth client secret file")
	cmd.Flags().StringVar(&tokenPath, "token", "token.json", "where to write the token")
	return cmd
}
