package common

import "context"

// GetAccountFromArgs extracts the account name from request arguments.
// Defaults to "default" when the argument is missing or empty.
func GetAccountFromArgs(_ context.Context, args map[string]interface{}) string {
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		return accountVal
	}
	return "default"
}
