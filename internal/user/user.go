// Package user resolves the person running flowboard
package user

import (
	"os"
	"os/user"
	"strings"
)

// Me is the assignee shorthand for the current user
const Me = "@me"

// CurrentUsername returns the login name of the current user, falling back
// to $USER and then "unknown" so the result is never empty.
func CurrentUsername() string {
	currentUser, err := user.Current()
	if err == nil && currentUser.Username != "" {
		return currentUser.Username
	}
	if username := os.Getenv("USER"); username != "" {
		return username
	}
	return "unknown"
}

// ResolveAssignee expands the @me shorthand; any other value is returned as is
func ResolveAssignee(value string) string {
	if strings.EqualFold(strings.TrimSpace(value), Me) {
		return CurrentUsername()
	}
	return value
}
