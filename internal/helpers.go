package internal

import "time"

const (
	formatDDMMYYYYHHMM = "02.01.2006 15:04 MST"
)

func Format(date time.Time) string {
	return date.UTC().Format(formatDDMMYYYYHHMM)
}

// FormatUnix formats a proposal timestamp counted in Unix seconds.
func FormatUnix(seconds uint64) string {
	return Format(time.Unix(int64(seconds), 0))
}
