// Package util holds small formatting helpers for log lines and error details.
package util

import (
	"math"
	"strconv"
	"strings"
	"time"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a size in binary units rounded to one decimal,
// e.g. "512 B", "1.5 KB", "5 MB".
func FormatBytes(bytes int64) string {
	size, unit := float64(bytes), 0
	for size >= 1024 && unit < len(byteUnits)-1 {
		size /= 1024
		unit++
	}

	return strconv.FormatFloat(math.Round(size*10)/10, 'f', -1, 64) + " " + byteUnits[unit]
}

// FormatDuration renders a duration to the second without zero units,
// e.g. "45s", "5m10s", "1h", "1h30m".
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)
	if duration <= 0 {
		return "0s"
	}

	var b strings.Builder
	for _, part := range []struct {
		unit   time.Duration
		suffix string
	}{
		{time.Hour, "h"},
		{time.Minute, "m"},
		{time.Second, "s"},
	} {
		if n := duration / part.unit; n > 0 {
			b.WriteString(strconv.FormatInt(int64(n), 10))
			b.WriteString(part.suffix)
			duration -= n * part.unit
		}
	}

	return b.String()
}
