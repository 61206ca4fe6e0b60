package slug

import (
	"fmt"
	"strings"
)

// Split breaks a repository full name of the form "owner/name" into its two
// parts. Subsequent documentation and chat calls take owner and repo
// separately, so every command funnels full names through here.
func Split(fullName string) (owner, repo string, err error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("expected a full repository name like 'owner/repo', got '%s'", fullName)
	}
	return parts[0], parts[1], nil
}

// Join is the inverse of Split.
func Join(owner, repo string) string {
	return fmt.Sprintf("%s/%s", owner, repo)
}
