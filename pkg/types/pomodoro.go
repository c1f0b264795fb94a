package types

import "time"

// Pomodoro is a logged focus session. Sessions are immutable historical facts:
// once created they can only be deleted, never edited.
type Pomodoro struct {
	ID        ID
	Title     string
	TaskType  string // free-form session kind
	Time      int    // planned duration in seconds
	Category  string
	CreatedAt time.Time
	EndAt     time.Time // never before CreatedAt
}

// PomodoroCount is the all-time session aggregate.
type PomodoroCount struct {
	Total     int   `json:"total"`
	TotalTime int64 `json:"totalTime"` // sum of planned durations, seconds
}

// PomodoroBucket is one group in a pomodoro statistics breakdown. The bucket
// key is "2006-W02" for weekly grouping (ISO-8601 week), "2006-01" for monthly
// grouping, or "allTime".
type PomodoroBucket struct {
	Bucket    string `json:"bucket"`
	Count     int    `json:"count"`
	TotalTime int64  `json:"totalTime"`
}
