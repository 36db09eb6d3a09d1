package domain

// ScheduleEntry is one block of a day plan. Start and End are clock
// labels in "H:MM AM/PM" form; Goal is empty for breaks, lunches and
// other entries not tied to a tracked goal.
type ScheduleEntry struct {
	Start string
	End   string
	Label string
	Goal  string
}
