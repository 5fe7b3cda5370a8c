// ABOUTME: Integration tests for lift CLI.
// ABOUTME: Tests full workflow from CLI commands.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	liftBinary := filepath.Join(projectRoot, "lift")

	buildCmd := exec.Command("go", "build", "-o", liftBinary, "./cmd/lift")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(liftBinary)

	// Isolate config and data in a temp directory
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))

	run := func(args ...string) (string, error) {
		cmd := exec.Command(liftBinary, args...)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Test init
	output, err := run("init", "--unit", "kg")
	if err != nil {
		t.Fatalf("Failed to init: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Initialized lift") {
		t.Errorf("Expected 'Initialized lift' in output, got: %s", output)
	}

	// Test logging a complete workout
	output, err = run("log", "-e", "Bench Press:chest:100x5,100x5,100x4")
	if err != nil {
		t.Fatalf("Failed to log workout: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged workout") {
		t.Errorf("Expected 'Logged workout' in output, got: %s", output)
	}

	// Test listing
	output, err = run("list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "1 exercises") {
		t.Errorf("Expected '1 exercises' in list output, got: %s", output)
	}

	// Test the draft session workflow
	output, err = run("start")
	if err != nil {
		t.Fatalf("Failed to start session: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Session started") {
		t.Errorf("Expected 'Session started' in output, got: %s", output)
	}

	output, err = run("add", "Squat", "legs", "120x5", "120x5")
	if err != nil {
		t.Fatalf("Failed to add exercise: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added Squat (Legs)") {
		t.Errorf("Expected 'Added Squat (Legs)' in output, got: %s", output)
	}

	output, err = run("done")
	if err != nil {
		t.Fatalf("Failed to finish session: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Session saved") {
		t.Errorf("Expected 'Session saved' in output, got: %s", output)
	}

	// Test stats dashboard
	output, err = run("stats")
	if err != nil {
		t.Fatalf("Failed to show stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Sessions: 2") {
		t.Errorf("Expected 'Sessions: 2' in stats output, got: %s", output)
	}

	// Test PRs
	output, err = run("prs")
	if err != nil {
		t.Fatalf("Failed to show PRs: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Bench Press") || !strings.Contains(output, "Squat") {
		t.Errorf("Expected PRs for both lifts, got: %s", output)
	}

	// Test export
	output, err = run("export", "json")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, "\"sessions\"") {
		t.Errorf("Expected sessions in export, got: %s", output)
	}
}
