package domain

// DayAvailability describes one day of a monthly availability calendar.
// Capacity is the day's effective capacity after cadence and weekly-cap
// zeroing; Available is clamped at zero for rendering, while aggregate
// range queries deliberately keep negative values to signal oversell.
type DayAvailability struct {
	Used      int `json:"used"`
	Available int `json:"available"`
	Capacity  int `json:"capacity"`
}

// MonthlyCalendar maps day-of-month (1-based) to that day's availability
type MonthlyCalendar map[int]DayAvailability
