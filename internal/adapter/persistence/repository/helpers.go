package repository

// DateLayout is the calendar-date format used by seed files and tables.
const DateLayout = "2006-01-02"

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
