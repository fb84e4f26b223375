package google

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// DefaultAccount is the account name used when the caller does not
// specify one. Token files are stored per account so one server can
// serve several Google identities.
const DefaultAccount = "default"

// accountNameRe restricts account names to safe filename characters.
var accountNameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// validateAccountName rejects account names that could escape the cache
// directory or collide with other token files.
func validateAccountName(account string) error {
	if account == "" {
		return fmt.Errorf("account name must not be empty")
	}
	if !accountNameRe.MatchString(account) {
		return fmt.Errorf("invalid account name %q: only letters, digits, hyphens and underscores are allowed", account)
	}
	return nil
}

// getTokenFilePath returns the token file for an account, e.g.
// google-default.token in the daybrief cache directory.
func getTokenFilePath(account string) string {
	return filepath.Join(userCacheDir(), "daybrief", "google-"+account+".token")
}

// HasTokenForAccount checks if a stored OAuth token exists for the account.
func HasTokenForAccount(account string) bool {
	if err := validateAccountName(account); err != nil {
		return false
	}
	_, err := os.ReadFile(getTokenFilePath(account))
	return err == nil
}

// HasToken checks if a token exists for the default account.
func HasToken() bool {
	return HasTokenForAccount(DefaultAccount)
}

// GetAuthURL returns the OAuth URL for user authorization.
func GetAuthURL() string {
	conf := getOAuthConfig()
	return conf.AuthCodeURL("state", oauth2.AccessTypeOffline)
}

// SaveToken exchanges an authorization code for tokens and stores them
// under the account's token file.
func SaveToken(ctx context.Context, account, authCode string) error {
	if err := validateAccountName(account); err != nil {
		return err
	}

	conf := getOAuthConfig()
	t, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	tokenFile := getTokenFilePath(account)
	if err := os.MkdirAll(filepath.Dir(tokenFile), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tokenData := t.AccessToken + " " + t.RefreshToken
	if err := os.WriteFile(tokenFile, []byte(tokenData), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// GetAuthenticationErrorMessage returns user-facing guidance for a
// missing or invalid token on the given account.
func GetAuthenticationErrorMessage(account string) string {
	return fmt.Sprintf(
		"No valid Google OAuth token for account %q. Run 'daybrief auth --account %s' to complete the OAuth flow, then retry.",
		account, account)
}

// GetOAuthConfig returns the OAuth2 configuration for all Google services.
func GetOAuthConfig() *oauth2.Config {
	return getOAuthConfig()
}

// getOAuthConfig returns the OAuth2 configuration for all Google services.
// Client credentials come from the environment so deployments bring
// their own OAuth application.
func getOAuthConfig() *oauth2.Config {
	const OOB = "urn:ietf:wg:oauth:2.0:oob"
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		Endpoint:     google.Endpoint,
		RedirectURL:  OOB,
		Scopes:       DefaultOAuthScopes,
	}
}

// GetTokenSourceForAccount returns an OAuth2 token source backed by the
// account's stored token. The source refreshes the access token as needed.
func GetTokenSourceForAccount(ctx context.Context, account string) (oauth2.TokenSource, error) {
	if err := validateAccountName(account); err != nil {
		return nil, err
	}

	conf := getOAuthConfig()

	slurp, err := os.ReadFile(getTokenFilePath(account))
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %q", account)
	}

	f := strings.Fields(strings.TrimSpace(string(slurp)))
	if len(f) != 2 {
		return nil, fmt.Errorf("invalid token format for account %q", account)
	}

	ts := conf.TokenSource(ctx, &oauth2.Token{
		AccessToken:  f[0],
		TokenType:    "Bearer",
		RefreshToken: f[1],
		Expiry:       time.Unix(1, 0),
	})

	// Validate the token
	if _, err := ts.Token(); err != nil {
		return nil, fmt.Errorf("cached token for account %q is invalid: %w", account, err)
	}

	return ts, nil
}

// GetHTTPClientForAccount returns an HTTP client configured with OAuth2
// authentication for the account. The client is configured to use
// HTTP/1.1 to avoid HTTP/2 protocol errors with the Google APIs.
func GetHTTPClientForAccount(ctx context.Context, account string) (*http.Client, error) {
	ts, err := GetTokenSourceForAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	baseTransport := &http.Transport{
		ForceAttemptHTTP2: false,
	}
	transport.Base = baseTransport

	return client, nil
}

func userCacheDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Caches")
	case "windows":
		for _, ev := range []string{"TEMP", "TMP"} {
			if v := os.Getenv(ev); v != "" {
				return v
			}
		}
		panic("No Windows TEMP or TMP environment variables found")
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(homeDir(), ".cache")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	return os.Getenv("HOME")
}
