package domain

import "time"

// CountEntry records one successful addition to the daily log.
type CountEntry struct {
	ID        string
	Date      string
	Delta     int
	Previous  int
	New       int
	CreatedAt time.Time
}
