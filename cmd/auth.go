package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/daybrief/internal/google"
)

func newAuthCmd() *cobra.Command {
	var (
		account string
		code    string
	)

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize read-only Google access (Gmail, Calendar)",
		Long: `Auth runs the OAuth authorization flow for one Google account.

Without --code it prints the authorization URL. Visit the URL, grant
access, copy the authorization code, and run the command again with
--code to save the token:

  daybrief auth --account work
  daybrief auth --account work --code 4/0Ab...

Requires GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET in the environment.
Tokens are stored per account and refreshed automatically.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if code == "" {
				fmt.Fprintf(cmd.OutOrStdout(), `To authorize Google access for account %q:

1. Visit this URL in your browser:
   %s

2. Sign in and grant read-only access to Gmail and Calendar
3. Copy the authorization code
4. Run: daybrief auth --account %s --code <authorization-code>
`, account, google.GetAuthURL(), account)
				return nil
			}

			if err := google.SaveToken(cmd.Context(), account, code); err != nil {
				return fmt.Errorf("failed to save token for account %q: %w", account, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Authorization successful for account %q. Gmail and Calendar are now available.\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", google.DefaultAccount, "Account name. Used to manage multiple Google accounts.")
	cmd.Flags().StringVar(&code, "code", "", "Authorization code from the Google consent page")

	return cmd
}
