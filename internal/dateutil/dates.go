// Package dateutil computes the date windows the weather provider is queried
// with. Weatherbit publishes a day's history with a lag, so windows anchored
// before 13:00 shift back one day.
package dateutil

import "time"

// Layout is the provider's date format.
const Layout = "2006-01-02"

// Format renders a time as the provider expects.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// ReportWindow returns the [start, end] pair covering the thirty days up to
// now, with the publishing-lag shift applied.
func ReportWindow(now time.Time) (start, end string) {
	anchor := now

	if anchor.Hour() <= 12 {
		anchor = anchor.AddDate(0, 0, -1)
	}

	return Format(anchor.AddDate(0, 0, -30)), Format(anchor)
}

// DailyWindow returns the [yesterday, today] pair the daily update queries.
func DailyWindow(now time.Time) (start, end string) {
	return Format(now.AddDate(0, 0, -1)), Format(now)
}
