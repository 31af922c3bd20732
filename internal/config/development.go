package config

import "os"

// Development reports whether the app runs in development mode. Any value
// other than "0" counts as on.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
