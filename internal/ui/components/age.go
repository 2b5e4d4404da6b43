package components

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

var ageMagnitudes = []humanize.RelTimeMagnitude{
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: 1},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: 1},
	{D: humanize.Day, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 day %s", DivBy: 1},
	{D: math.MaxInt64, Format: "%d days %s", DivBy: humanize.Day},
}

// RelativeAge describes then relative to now, such as "just now" or
// "3 minutes ago". A zero then yields "never".
func RelativeAge(then, now time.Time) string {
	if then.IsZero() {
		return "never"
	}
	if now.Sub(then) < time.Minute {
		return "just now"
	}
	return humanize.CustomRelTime(then, now, "ago", "from now", ageMagnitudes)
}
