package common

import (
	"time"
)

const displayTimeFormat = "2006-01-02 15:04:05"

// FormatTimestamp renders a unix-millisecond timestamp for display.
// Zero means "never" and renders as an empty string.
func FormatTimestamp(millis int64) string {
	if millis == 0 {
		return ""
	}
	return time.UnixMilli(millis).Format(displayTimeFormat)
}
