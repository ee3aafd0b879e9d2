package service

import "time"

// dateOnly truncates t to its calendar date in UTC. All derivations
// compare calendar dates, never instants.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, value)
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// wholeDaysBetween returns the count of whole days from one calendar date
// to another, truncated toward zero.
func wholeDaysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}
