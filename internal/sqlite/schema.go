// Package sqlite implements the embedded record store for Daybook: four
// entity tables plus a local key-value flag table, all in a single
// schema-versioned SQLite database file.
package sqlite

// Schema DDL for all tables. Embedded records (checklist tasks, user
// preferences) are stored as JSON columns owned by their parent row; they
// have no table of their own and no independent lifecycle.
const (
	createChecklists = `CREATE TABLE checklists (
    checklist_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    task_type TEXT NOT NULL,
    is_completed INTEGER NOT NULL DEFAULT 0,
    category TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL,
    end_at INTEGER NOT NULL DEFAULT 0,
    tasks TEXT NOT NULL DEFAULT '[]'
);`

	createEvents = `CREATE TABLE events (
    event_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL,
    time TEXT NOT NULL,
    repeat_type TEXT NOT NULL DEFAULT '',
    custom_interval INTEGER NOT NULL DEFAULT 0,
    interval INTEGER NOT NULL DEFAULT 0,
    category TEXT NOT NULL DEFAULT '',
    is_one_time INTEGER NOT NULL DEFAULT 0,
    week_days TEXT NOT NULL DEFAULT '[]',
    created_at TEXT NOT NULL
);`

	createPomodoros = `CREATE TABLE pomodoros (
    pomodoro_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    task_type TEXT NOT NULL DEFAULT '',
    time INTEGER NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    end_at TEXT NOT NULL
);`

	createUsers = `CREATE TABLE users (
    user_id TEXT PRIMARY KEY,
    user_name TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    profile_picture TEXT NOT NULL DEFAULT '',
    last_opened TEXT NOT NULL,
    preferences TEXT NOT NULL DEFAULT '{}'
);`

	createFlags = `CREATE TABLE app_flags (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// Index DDL for the list queries, which always order by creation time.
const (
	idxChecklistsCreated = `CREATE INDEX idx_checklists_created ON checklists(created_at);`
	idxEventsCreated     = `CREATE INDEX idx_events_created ON events(created_at);`
	idxPomodorosCreated  = `CREATE INDEX idx_pomodoros_created ON pomodoros(created_at);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createChecklists,
	createEvents,
	createPomodoros,
	createUsers,
	createFlags,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxChecklistsCreated,
	idxEventsCreated,
	idxPomodorosCreated,
}

// entityTables lists the tables wiped by DeleteAll and ReplaceAll, in delete
// order. app_flags is deliberately absent: local flags survive a restore.
var entityTables = []string{"checklists", "events", "pomodoros", "users"}
