package services

import "time"

// DayLayout is the calendar-date encoding used across the store
// (tasks.due_date, reagents.expiry_date, experiments.date).
const DayLayout = "2006-01-02"

func ParseDay(raw string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, raw, time.UTC)
}

func FormatDay(day time.Time) string {
	return day.Format(DayLayout)
}

func Today(location *time.Location) string {
	return time.Now().In(location).Format(DayLayout)
}

// AddDays shifts a calendar-date string by a day count. The input is
// returned unchanged when it does not parse.
func AddDays(raw string, days int) string {
	day, err := ParseDay(raw)
	if err != nil {
		return raw
	}
	return FormatDay(day.AddDate(0, 0, days))
}

func ValidDay(raw string) bool {
	_, err := ParseDay(raw)
	return err == nil
}
