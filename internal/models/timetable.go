package models

// Weekdays lists the timetable days in display order. Timetable maps are
// keyed by these values.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// ClassSlot is one scheduled class on a given day.
type ClassSlot struct {
	// Subject is the class name (e.g. "Linear Algebra").
	Subject string `json:"subject"`

	// Time is the display time of the slot (e.g. "09:00 - 10:00").
	Time string `json:"time"`

	// Room is the location of the class.
	Room string `json:"room"`
}

// Timetable is a user's weekly schedule: weekday name to ordered class slots.
type Timetable map[string][]ClassSlot

// IsWeekday reports whether day is a valid timetable day name.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
