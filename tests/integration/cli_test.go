// CLI integration tests for daybook: entity lifecycle, snapshot export and
// restore, and the wipe command, all driven through the built binary.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain builds the daybook binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "daybook-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "daybook")
	SetDaybookBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/daybook")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{
			Err:    err,
			Output: string(output),
		})
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)

	os.Exit(code)
}

func TestVersion(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunDaybook("version")
	if !strings.Contains(result.Stdout, "daybook v") {
		t.Errorf("unexpected version output: %q", result.Stdout)
	}
}

func TestChecklistLifecycle(t *testing.T) {
	env := NewTestEnv(t)

	// Create with tasks.
	created := env.MustRunDaybook("checklist", "add",
		"--title", "Groceries", "--type", "Reusable", "--tasks", "milk,eggs", "--json")
	record := ParseJSON[CreatedRecord](t, created.Stdout)
	if len(record.ID) != 24 {
		t.Fatalf("expected 24-char hex id, got %q", record.ID)
	}

	// List shows the record with its tasks.
	list := env.MustRunDaybook("checklist", "list", "--json")
	checklists := ParseJSON[[]ChecklistRecord](t, list.Stdout)
	if len(checklists) != 1 {
		t.Fatalf("expected 1 checklist, got %d", len(checklists))
	}
	if checklists[0].Title != "Groceries" || len(checklists[0].Tasks) != 2 {
		t.Errorf("unexpected checklist: %+v", checklists[0])
	}

	// Mark complete.
	env.MustRunDaybook("checklist", "done", record.ID)
	list = env.MustRunDaybook("checklist", "list", "--json")
	checklists = ParseJSON[[]ChecklistRecord](t, list.Stdout)
	if !checklists[0].IsCompleted {
		t.Error("checklist not marked completed")
	}

	// Delete, then deleting again fails with a user error.
	env.MustRunDaybook("checklist", "delete", record.ID)
	result := env.RunDaybook("checklist", "delete", record.ID)
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1 deleting a missing checklist, got %d", result.ExitCode)
	}
}

func TestEventOccurrences(t *testing.T) {
	env := NewTestEnv(t)

	// Weekly Monday standup starting 2025-01-06 (a Monday).
	env.MustRunDaybook("event", "add",
		"--title", "Standup", "--date", "2025-01-06", "--time", "09:30",
		"--repeat", "Weekly", "--weekdays", "Mon")
	// Later meeting the same day.
	env.MustRunDaybook("event", "add",
		"--title", "Retro", "--date", "2025-01-06", "--time", "16:00",
		"--repeat", "Weekly", "--weekdays", "Mon")

	// A Monday three weeks later has both, sorted by time of day.
	on := env.MustRunDaybook("event", "on", "2025-01-27", "--json")
	events := ParseJSON[[]EventRecord](t, on.Stdout)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Title != "Standup" || events[1].Title != "Retro" {
		t.Errorf("events out of order: %+v", events)
	}

	// A Tuesday has none.
	on = env.MustRunDaybook("event", "on", "2025-01-28", "--json")
	if out := strings.TrimSpace(on.Stdout); out != "null" && out != "[]" {
		t.Errorf("expected no events, got %q", out)
	}
}

func TestPomodoroStats(t *testing.T) {
	env := NewTestEnv(t)

	for _, secs := range []string{"300", "600", "900"} {
		env.MustRunDaybook("pomodoro", "log", "--title", "focus", "--seconds", secs)
	}

	stats := env.MustRunDaybook("pomodoro", "stats", "--group-by", "allTime", "--json")
	buckets := ParseJSON[[]BucketRecord](t, stats.Stdout)
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	if buckets[0].Count != 3 || buckets[0].TotalTime != 1800 {
		t.Errorf("unexpected allTime bucket: %+v", buckets[0])
	}

	result := env.RunDaybook("pomodoro", "stats", "--group-by", "quarter")
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1 for unknown grouping, got %d", result.ExitCode)
	}
}

func TestExportRestoreRoundTrip(t *testing.T) {
	env := NewTestEnv(t)

	created := env.MustRunDaybook("checklist", "add", "--title", "Groceries", "--json")
	record := ParseJSON[CreatedRecord](t, created.Stdout)
	env.MustRunDaybook("pomodoro", "log", "--title", "focus", "--seconds", "1500")

	snapPath := filepath.Join(env.TempDir, "snapshot.json")
	env.MustRunDaybook("export", "--out", snapPath)

	// Wipe everything, then restore from the file.
	env.MustRunDaybook("wipe", "--yes")
	list := env.MustRunDaybook("checklist", "list", "--json")
	if out := strings.TrimSpace(list.Stdout); out != "null" && out != "[]" {
		t.Fatalf("expected empty store after wipe, got %q", out)
	}

	env.MustRunDaybook("restore", "--file", snapPath)

	list = env.MustRunDaybook("checklist", "list", "--json")
	checklists := ParseJSON[[]ChecklistRecord](t, list.Stdout)
	if len(checklists) != 1 {
		t.Fatalf("expected 1 checklist after restore, got %d", len(checklists))
	}
	if checklists[0].ID != record.ID {
		t.Errorf("restore changed the id: want %s, got %s", record.ID, checklists[0].ID)
	}
}

func TestWipeRequiresConfirmation(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunDaybook("wipe")
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1 without --yes, got %d", result.ExitCode)
	}
}
