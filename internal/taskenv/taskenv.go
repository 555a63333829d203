// Package taskenv reads tasknest settings from the environment.
package taskenv

import (
	"os"
	"strings"
)

// DBPathVar overrides the task database path.
const DBPathVar = "TASKNEST_DB"

// AddrVar overrides the server listen address.
const AddrVar = "TASKNEST_ADDR"

// DBPath returns the database path from the environment, if set.
func DBPath() (string, bool) {
	return lookup(DBPathVar)
}

// Addr returns the listen address from the environment, if set.
func Addr() (string, bool) {
	return lookup(AddrVar)
}

func lookup(key string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return "", false
	}
	return value, true
}
