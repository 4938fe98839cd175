package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestCLIWorkflow(t *testing.T) {
	// Get project root directory
	projectRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	// Build CLI
	cliPath := filepath.Join(projectRoot, "adrank-test")
	buildCmd := exec.Command("go", "build", "-o", cliPath, "./cmd/adrank")
	buildCmd.Dir = projectRoot
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build: %v\n%s", err, out)
	}
	defer os.Remove(cliPath)

	tmpDir := t.TempDir()

	input := filepath.Join(tmpDir, "ads.json")
	payload := `{"data":[
		{"ad_archive_id":"A1","page_name":"Longest","start_date":0,"end_date":864000},
		{"ad_archive_id":"A2","page_name":"Active","start_date_string":"2025-01-01T00:00:00Z","is_active":true},
		{"ad_archive_id":"A3","page_name":"Broken","end_date":1000}
	]}`
	if err := os.WriteFile(input, []byte(payload), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	// Rank with a pinned clock
	out := run(t, tmpDir, cliPath, input, "--now", "2025-01-03T00:00:00Z")

	if !strings.Contains(out, "Ad Archive ID") {
		t.Error("expected table header in stdout")
	}
	if !strings.Contains(out, "10.00") {
		t.Error("expected 10.00 active days for A1")
	}
	if !strings.Contains(out, "2.00") {
		t.Error("expected 2.00 active days for the still-active ad")
	}
	if strings.Contains(out, "Broken") {
		t.Error("expected ad without a start time to be excluded")
	}

	// A1 outranks A2
	if strings.Index(out, "A1") > strings.Index(out, "A2") {
		t.Error("expected A1 ranked above A2")
	}

	// Default report file next to the input
	reportPath := filepath.Join(tmpDir, "ads_ranked.txt")
	report, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	if string(report) != out {
		t.Error("expected report file to match stdout")
	}

	// Explicit output override
	override := filepath.Join(tmpDir, "custom.txt")
	run(t, tmpDir, cliPath, input, "--now", "2025-01-03T00:00:00Z", "--output", override)
	if _, err := os.Stat(override); err != nil {
		t.Errorf("override report not written: %v", err)
	}

	// Invalid --now exits non-zero and writes nothing
	cmd := exec.Command(cliPath, input, "--now", "not-a-date", "--output", filepath.Join(tmpDir, "never.txt"))
	cmd.Dir = tmpDir
	if err := cmd.Run(); err == nil {
		t.Error("expected non-zero exit for invalid --now")
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "never.txt")); !os.IsNotExist(err) {
		t.Error("expected no report file after invalid --now")
	}
}

func run(t *testing.T, dir string, name string, args ...string) string {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("%s %v failed: %v\n%s", name, args, err, out)
	}
	return string(out)
}
