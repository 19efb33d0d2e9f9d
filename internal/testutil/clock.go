package testutil

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/football-fixtures-service/internal/timeutil"
)

// Kickoff returns date (YYYY-MM-DD) at hh:mm UTC, panicking on a bad date.
func Kickoff(date string, hour, minute int) time.Time {
	day, err := timeutil.ParseDate(date)
	if err != nil {
		panic(fmt.Sprintf("testutil: kickoff date %q: %v", date, err))
	}
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}
