// Package integration provides CLI integration tests for daybook.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// daybookBin is the path to the built daybook binary.
	daybookBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetDaybookBin sets the path to the daybook binary (called from TestMain).
func SetDaybookBin(path string) {
	daybookBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and data
// directory.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	DataDir   string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build daybook: %v", buildErr)
	}
	if daybookBin == "" {
		t.Fatal("daybook binary not built (daybookBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "data_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
		DataDir:   dataDir,
	}
}

// CmdResult holds the result of a daybook command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunDaybook executes the daybook CLI with the given arguments.
func (e *TestEnv) RunDaybook(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(daybookBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run daybook: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunDaybook executes the daybook CLI and fails the test if it returns
// non-zero.
func (e *TestEnv) MustRunDaybook(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunDaybook(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("daybook %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// CreatedRecord is the JSON shape create commands print with --json.
type CreatedRecord struct {
	ID string `json:"_id"`
}

// ChecklistRecord is the JSON shape of a listed checklist.
type ChecklistRecord struct {
	ID          string `json:"ID"`
	Title       string `json:"Title"`
	TaskType    string `json:"TaskType"`
	IsCompleted bool   `json:"IsCompleted"`
	Tasks       []struct {
		Title       string `json:"title"`
		IsCompleted bool   `json:"isCompleted"`
	} `json:"Tasks"`
}

// EventRecord is the JSON shape of a listed event.
type EventRecord struct {
	ID    string `json:"ID"`
	Title string `json:"Title"`
	Time  string `json:"Time"`
}

// BucketRecord is the JSON shape of a pomodoro statistics bucket.
type BucketRecord struct {
	Bucket    string `json:"bucket"`
	Count     int    `json:"count"`
	TotalTime int64  `json:"totalTime"`
}
