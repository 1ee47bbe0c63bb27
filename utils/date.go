package utils

import "time"

// Today returns the current date as a zero-padded ISO string, the storage
// format for every date in the system.
func Today() string {
	return time.Now().Format("2006-01-02")
}
