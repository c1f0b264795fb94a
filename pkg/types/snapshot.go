package types

// Snapshot is a complete, plain-data copy of every entity in the store at a
// point in time. It is the unit of cloud backup: JSON-serializable, with ids
// as lowercase hex strings and dates as RFC 3339 strings, so a round trip
// through export and restore reproduces the store field for field.
type Snapshot struct {
	Checklists []SnapshotChecklist `json:"checklists"`
	Events     []SnapshotEvent     `json:"events"`
	Pomodoros  []SnapshotPomodoro  `json:"pomodoros"`
	User       *SnapshotUser       `json:"user"`
}

// SnapshotChecklist is the wire form of a checklist record.
type SnapshotChecklist struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TaskType    string `json:"taskType"`
	IsCompleted bool   `json:"isCompleted"`
	Category    string `json:"category"`
	CreatedAt   int64  `json:"createdAt"` // unix milliseconds
	EndAt       int64  `json:"endAt"`     // unix milliseconds
	Tasks       []Task `json:"tasks"`
}

// SnapshotEvent is the wire form of an event record.
type SnapshotEvent struct {
	ID             string   `json:"_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Date           string   `json:"date"` // RFC 3339
	Time           string   `json:"time"` // "HH:MM"
	RepeatType     string   `json:"repeatType,omitempty"`
	CustomInterval bool     `json:"customInterval,omitempty"`
	Interval       int      `json:"interval,omitempty"`
	Category       string   `json:"category,omitempty"`
	IsOneTime      bool     `json:"isOneTime"`
	WeekDays       []string `json:"weekDays,omitempty"`
	CreatedAt      string   `json:"createdAt"` // RFC 3339
}

// SnapshotPomodoro is the wire form of a pomodoro record.
type SnapshotPomodoro struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	TaskType  string `json:"taskType"`
	Time      int    `json:"time"` // seconds
	Category  string `json:"category"`
	CreatedAt string `json:"createdAt"` // RFC 3339
	EndAt     string `json:"endAt"`     // RFC 3339
}

// SnapshotUser is the wire form of the singleton user record.
type SnapshotUser struct {
	UserName       string       `json:"userName"`
	Email          string       `json:"email"`
	ProfilePicture string       `json:"profilePicture,omitempty"`
	LastOpened     string       `json:"lastOpened"` // RFC 3339
	Preferences    *Preferences `json:"preferences,omitempty"`
}

// BackupDocument is the remote document stored per user under
// users/{uid}/backup/data: the snapshot plus upload metadata.
type BackupDocument struct {
	Snapshot
	LastBackupDate string `json:"lastBackupDate"` // RFC 3339, stamped on upload
	RevisionID     string `json:"revisionId"`     // fresh UUID per upload
}
