// Package user names the person operating the board. Card history records
// this name as the actor of every change.
package user

import (
	"os"
	"os/user"
	"strings"
)

// Unknown is used when no name can be found
const Unknown = "unknown"

// Name returns the login name of the current user, falling back to $USER
// and then to Unknown.
func Name() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return Unknown
}

// Resolve returns override when it is set, otherwise Name
func Resolve(override string) string {
	if name := strings.TrimSpace(override); name != "" {
		return name
	}
	return Name()
}
