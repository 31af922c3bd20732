package config

import "os"

// DataPath returns where the records database lives.
func DataPath() string {
	if path, ok := os.LookupEnv("MINESWEEPER_DATA"); ok {
		return path
	}
	return "minesweeper.db"
}

// LogPath returns where file logs go.
func LogPath() string {
	if path, ok := os.LookupEnv("MINESWEEPER_LOG"); ok {
		return path
	}
	return "minesweeper.log"
}
