package repository

import (
	"strconv"
	"time"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// boolToString converts a Go bool to the "true"/"false" text stored in kv_store.
func boolToString(b bool) string {
	return strconv.FormatBool(b)
}
