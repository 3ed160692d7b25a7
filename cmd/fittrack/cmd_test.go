// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Runs commands against a temp data directory and checks the stored result.
package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "date and time with space", input: "2025-01-31 08:30"},
		{name: "date and time with T", input: "2025-01-31T08:30"},
		{name: "date only", input: "2025-01-31"},
		{name: "RFC3339", input: "2025-01-31T08:30:00Z"},
		{name: "RFC3339 with offset", input: "2025-01-31T08:30:00+05:00"},
		{name: "invalid format", input: "31-01-2025", wantErr: true},
		{name: "invalid random string", input: "not a date", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTime(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseTime(%q) unexpected error: %v", tt.input, err)
				return
			}
			if result.IsZero() {
				t.Errorf("parseTime(%q) returned zero time", tt.input)
			}
		})
	}
}

func TestParseTimeUsesLocalZone(t *testing.T) {
	result, err := parseTime("2025-06-15 07:45")
	if err != nil {
		t.Fatalf("parseTime failed: %v", err)
	}
	if result.Location() != time.Local {
		t.Errorf("Expected local time, got %v", result.Location())
	}
	if result.Hour() != 7 || result.Minute() != 45 {
		t.Errorf("parseTime returned wrong time: got %v", result)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world this is long", 10, "hello w..."},
		{"", 5, ""},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input  string
		length int
		want   string
	}{
		{"steps", 8, "steps   "},
		{"calories", 8, "calories"},
		{"swimming!", 4, "swimming!"},
		{"", 3, "   "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.length); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		progress float64
		want     string
	}{
		{0, "[--------------------]   0%"},
		{0.5, "[##########----------]  50%"},
		{0.25, "[#####---------------]  25%"},
		{1, "[####################] 100%"},
	}

	for _, tt := range tests {
		if got := progressBar(tt.progress); got != tt.want {
			t.Errorf("progressBar(%v) = %q, want %q", tt.progress, got, tt.want)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{
		"add", "list", "edit", "delete", "today", "workout", "session",
		"prefs", "estimate", "config", "export", "import", "migrate", "mcp",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("Expected %s command to be registered", name)
		}
	}
}

func TestSkipSetup(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		want bool
	}{
		{configShowCmd, true},
		{configSetCmd, true},
		{addCmd, false},
		{workoutListCmd, false},
		{mcpCmd, false},
	}

	for _, tt := range tests {
		if got := skipSetup(tt.cmd); got != tt.want {
			t.Errorf("skipSetup(%s) = %v, want %v", tt.cmd.CommandPath(), got, tt.want)
		}
	}
}

func TestAddCmdAliases(t *testing.T) {
	aliases := map[string]bool{}
	for _, a := range addCmd.Aliases {
		aliases[a] = true
	}
	if !aliases["a"] || !aliases["log"] {
		t.Errorf("Expected aliases a and log, got %v", addCmd.Aliases)
	}
}

func TestExportCmdValidArgs(t *testing.T) {
	want := map[string]bool{"json": true, "yaml": true}
	for _, arg := range exportCmd.ValidArgs {
		if !want[arg] {
			t.Errorf("Unexpected valid arg %q", arg)
		}
		delete(want, arg)
	}
	if len(want) != 0 {
		t.Errorf("Missing valid args: %v", want)
	}
}

// setupTestCLI redirects data and config to a temp directory and resets
// command state between runs. It returns the data directory.
func setupTestCLI(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("ENV", "test")

	color.NoColor = true
	resetFlags(rootCmd)
	t.Cleanup(func() {
		_ = teardown()
		resetFlags(rootCmd)
	})

	return filepath.Join(tmpDir, "fittrack")
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// run executes the CLI with args and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	w.Close()
	os.Stdout = orig
	out := <-done
	r.Close()

	// A failed RunE skips PersistentPostRunE.
	_ = teardown()
	return out, execErr
}

// openTestDB opens the CLI database for inspection. Close it before the next run.
func openTestDB(t *testing.T, dataDir string) *storage.DB {
	t.Helper()

	db, err := storage.Open(filepath.Join(dataDir, "fittrack.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	return db
}

// seedActivity stores a record directly and returns it.
func seedActivity(t *testing.T, dataDir string, a *models.ActivityRecord) *models.ActivityRecord {
	t.Helper()

	db := openTestDB(t, dataDir)
	defer db.Close()
	if err := db.CreateActivity(a); err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}
	return a
}

func listAll(t *testing.T, dataDir string) []*models.ActivityRecord {
	t.Helper()

	db := openTestDB(t, dataDir)
	defer db.Close()
	activities, err := db.ListActivities(storage.ActivityFilter{})
	if err != nil {
		t.Fatalf("ListActivities failed: %v", err)
	}
	return activities
}

func TestAddCmdWithDB(t *testing.T) {
	dataDir := setupTestCLI(t)

	if _, err := run(t, "add", "steps", "4200"); err != nil {
		t.Fatalf("add command failed: %v", err)
	}

	activities := listAll(t, dataDir)
	if len(activities) != 1 {
		t.Fatalf("Expected 1 activity, got %d", len(activities))
	}
	if activities[0].Category != models.CategorySteps || activities[0].Value != 4200 {
		t.Errorf("Unexpected activity: %+v", activities[0])
	}
}

func TestAddCmdWithOptions(t *testing.T) {
	dataDir := setupTestCLI(t)

	_, err := run(t, "add", "Running", "30", "--note", "tempo", "--at", "2025-01-31 08:00", "--duration", "35")
	if err != nil {
		t.Fatalf("add command failed: %v", err)
	}

	activities := listAll(t, dataDir)
	if len(activities) != 1 {
		t.Fatalf("Expected 1 activity, got %d", len(activities))
	}
	a := activities[0]
	if a.Category != models.CategoryRunning {
		t.Errorf("Category = %s, want running", a.Category)
	}
	if a.Note != "tempo" {
		t.Errorf("Note = %q, want tempo", a.Note)
	}
	if a.DurationMinutes != 35 {
		t.Errorf("DurationMinutes = %d, want 35", a.DurationMinutes)
	}
	if got := a.RecordedAt.Local().Format("2006-01-02 15:04"); got != "2025-01-31 08:00" {
		t.Errorf("RecordedAt = %s, want 2025-01-31 08:00", got)
	}
}

func TestAddCmdInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"non-numeric value", []string{"add", "steps", "many"}},
		{"negative value", []string{"add", "steps", "-5"}},
		{"bad timestamp", []string{"add", "steps", "10", "--at", "yesterday"}},
		{"missing value", []string{"add", "steps"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataDir := setupTestCLI(t)

			if _, err := run(t, tt.args...); err == nil {
				t.Error("Expected error, got nil")
			}
			if _, statErr := os.Stat(filepath.Join(dataDir, "fittrack.db")); statErr == nil {
				if n := len(listAll(t, dataDir)); n != 0 {
					t.Errorf("Expected no activities, got %d", n)
				}
			}
		})
	}
}

func TestListCmdWithDB(t *testing.T) {
	dataDir := setupTestCLI(t)

	seedActivity(t, dataDir, models.NewActivity(models.CategorySteps, 1234).WithNote("morning"))
	seedActivity(t, dataDir, models.NewActivity(models.CategoryYoga, 20).WithRecordedAt(time.Now().AddDate(0, 0, -3)))

	out, err := run(t, "list")
	if err != nil {
		t.Fatalf("list command failed: %v", err)
	}
	if !strings.Contains(out, "1234 steps") || !strings.Contains(out, "(morning)") {
		t.Errorf("Expected steps entry with note, got:\n%s", out)
	}
	if !strings.Contains(out, "20 min") {
		t.Errorf("Expected yoga entry, got:\n%s", out)
	}

	out, err = run(t, "list", "--today")
	if err != nil {
		t.Fatalf("list --today failed: %v", err)
	}
	if strings.Contains(out, "yoga") {
		t.Errorf("Expected --today to hide older entries, got:\n%s", out)
	}

	out, err = run(t, "list", "--category", "yoga")
	if err != nil {
		t.Fatalf("list --category failed: %v", err)
	}
	if strings.Contains(out, "steps") {
		t.Errorf("Expected only yoga, got:\n%s", out)
	}
}

func TestListCmdEmpty(t *testing.T) {
	setupTestCLI(t)

	out, err := run(t, "list")
	if err != nil {
		t.Fatalf("list command failed: %v", err)
	}
	if !strings.Contains(out, "No activities found.") {
		t.Errorf("Unexpected output: %s", out)
	}
}

func TestEditCmdWithDB(t *testing.T) {
	dataDir := setupTestCLI(t)
	a := seedActivity(t, dataDir, models.NewActivity(models.CategoryCycling, 40).WithNote("commute"))

	if _, err := run(t, "edit", a.ID.String()[:8], "--value", "55", "--note", ""); err != nil {
		t.Fatalf("edit command failed: %v", err)
	}

	got := listAll(t, dataDir)[0]
	if got.Value != 55 {
		t.Errorf("Value = %d, want 55", got.Value)
	}
	if got.Note != "" {
		t.Errorf("Expected note to be cleared, got %q", got.Note)
	}
}

func TestEditCmdErrors(t *testing.T) {
	dataDir := setupTestCLI(t)
	a := seedActivity(t, dataDir, models.NewActivity(models.CategorySteps, 100))

	if _, err := run(t, "edit", a.ID.String()); err == nil {
		t.Error("Expected error when no flags are given")
	}
	if _, err := run(t, "edit", a.ID.String(), "--value", "-1"); err == nil {
		t.Error("Expected error for negative value")
	}
	if _, err := run(t, "edit", "ffffffff", "--value", "1"); err == nil {
		t.Error("Expected error for unknown ID")
	}

	if got := listAll(t, dataDir)[0].Value; got != 100 {
		t.Errorf("Value changed to %d", got)
	}
}

func TestDeleteCmdWithDB(t *testing.T) {
	dataDir := setupTestCLI(t)
	a := seedActivity(t, dataDir, models.NewActivity(models.CategorySteps, 100))

	if _, err := run(t, "delete", a.ID.String()[:8]); err != nil {
		t.Fatalf("delete command failed: %v", err)
	}
	if n := len(listAll(t, dataDir)); n != 0 {
		t.Errorf("Expected 0 activities, got %d", n)
	}
}

func TestDeleteCmdNotFound(t *testing.T) {
	setupTestCLI(t)

	if _, err := run(t, "delete", "nonexistent"); err == nil {
		t.Error("Expected error for nonexistent activity")
	}
}

func TestPrefsAndEstimate(t *testing.T) {
	setupTestCLI(t)

	if _, err := run(t, "prefs", "set", "weight_kg", "80"); err != nil {
		t.Fatalf("prefs set failed: %v", err)
	}

	out, err := run(t, "estimate", "running", "60")
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}
	if !strings.HasPrefix(out, "640 kcal") {
		t.Errorf("Expected 640 kcal at stored weight, got %q", out)
	}

	out, err = run(t, "estimate", "walking", "30", "--weight", "70")
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}
	if !strings.HasPrefix(out, "122 kcal") {
		t.Errorf("Expected 122 kcal, got %q", out)
	}

	out, err = run(t, "prefs", "show")
	if err != nil {
		t.Fatalf("prefs show failed: %v", err)
	}
	if !strings.Contains(out, "weight_kg") || !strings.Contains(out, "80") {
		t.Errorf("Expected stored weight in output, got:\n%s", out)
	}
}

func TestPrefsSetRejectsInvalid(t *testing.T) {
	setupTestCLI(t)

	tests := [][]string{
		{"prefs", "set", "daily_step_goal", "0"},
		{"prefs", "set", "weight_kg", "-3"},
		{"prefs", "set", "shoe_size", "44"},
	}
	for _, args := range tests {
		if _, err := run(t, args...); err == nil {
			t.Errorf("Expected error for %v", args)
		}
	}
}

func TestPrefsReset(t *testing.T) {
	setupTestCLI(t)

	if _, err := run(t, "prefs", "set", "daily_step_goal", "5000"); err != nil {
		t.Fatalf("prefs set failed: %v", err)
	}
	if _, err := run(t, "prefs", "reset"); err != nil {
		t.Fatalf("prefs reset failed: %v", err)
	}

	out, err := run(t, "prefs", "show")
	if err != nil {
		t.Fatalf("prefs show failed: %v", err)
	}
	if !strings.Contains(out, "10000") {
		t.Errorf("Expected default step goal after reset, got:\n%s", out)
	}
}

func TestTodayCmd(t *testing.T) {
	dataDir := setupTestCLI(t)
	seedActivity(t, dataDir, models.NewActivity(models.CategorySteps, 5000))

	out, err := run(t, "today")
	if err != nil {
		t.Fatalf("today command failed: %v", err)
	}
	if !strings.Contains(out, "[##########----------]  50% 5000 / 10000") {
		t.Errorf("Expected half-full step bar, got:\n%s", out)
	}
	if !strings.Contains(out, "BMI") {
		t.Errorf("Expected BMI line, got:\n%s", out)
	}
}

func TestWorkoutListFallsBackToCatalog(t *testing.T) {
	setupTestCLI(t)

	out, err := run(t, "workout", "list", "--limit", "2")
	if err != nil {
		t.Fatalf("workout list failed: %v", err)
	}
	if !strings.Contains(out, "Brisk Walk") || !strings.Contains(out, "Interval Run") {
		t.Errorf("Expected first catalog entries, got:\n%s", out)
	}
	if strings.Contains(out, "Indoor Cycling") {
		t.Errorf("Expected page of 2, got:\n%s", out)
	}
	if !strings.Contains(out, "1-2 of 7 from static-catalog") {
		t.Errorf("Expected page footer, got:\n%s", out)
	}
}

const historyYAML = `sessions:
  - title: Evening run
    activity_type: running
    started_at: 2025-05-19T18:00:00Z
    ended_at: 2025-05-19T18:40:00Z
    notes: hills
    samples:
      - type: calories_expended
        float_value: 410
        recorded_at: 2025-05-19T18:40:00Z
      - type: heart_rate_bpm
        float_value: 152
        recorded_at: 2025-05-19T18:20:00Z
      - type: distance_delta
        float_value: 7000
        recorded_at: 2025-05-19T18:40:00Z
`

func TestSessionImportAndWorkouts(t *testing.T) {
	setupTestCLI(t)

	path := filepath.Join(t.TempDir(), "history.yaml")
	if err := os.WriteFile(path, []byte(historyYAML), 0600); err != nil {
		t.Fatalf("Failed to write history: %v", err)
	}

	if _, err := run(t, "session", "import", path); err != nil {
		t.Fatalf("session import failed: %v", err)
	}

	out, err := run(t, "session", "list")
	if err != nil {
		t.Fatalf("session list failed: %v", err)
	}
	if !strings.Contains(out, "Evening run") || !strings.Contains(out, "40m0s") {
		t.Errorf("Expected imported session, got:\n%s", out)
	}

	out, err = run(t, "workout", "list")
	if err != nil {
		t.Fatalf("workout list failed: %v", err)
	}
	if !strings.Contains(out, "Evening run") || !strings.Contains(out, "from sessions") {
		t.Errorf("Expected session workout, got:\n%s", out)
	}

	id := strings.Fields(out)[0]
	out, err = run(t, "workout", "show", id)
	if err != nil {
		t.Fatalf("workout show failed: %v", err)
	}
	for _, want := range []string{"410 kcal", "7.00 km", "152 bpm avg", "High intensity", "hills"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestSessionImportInvalidFile(t *testing.T) {
	setupTestCLI(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "sessions:\n  - activity_type: run\n    started_at: 2025-05-19T18:00:00Z\n    ended_at: 2025-05-19T17:00:00Z\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatalf("Failed to write history: %v", err)
	}

	if _, err := run(t, "session", "import", path); err == nil {
		t.Error("Expected error for session ending before it starts")
	}
	if _, err := run(t, "session", "import", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	dataDir := setupTestCLI(t)
	seedActivity(t, dataDir, models.NewActivity(models.CategorySwimming, 45))

	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			backup := filepath.Join(t.TempDir(), "backup."+format)
			if _, err := run(t, "export", format, "-o", backup); err != nil {
				t.Fatalf("export failed: %v", err)
			}

			fresh := t.TempDir()
			t.Setenv("XDG_DATA_HOME", fresh)
			if _, err := run(t, "import", backup); err != nil {
				t.Fatalf("import failed: %v", err)
			}

			activities := listAll(t, filepath.Join(fresh, "fittrack"))
			if len(activities) != 1 || activities[0].Category != models.CategorySwimming {
				t.Errorf("Unexpected imported activities: %+v", activities)
			}
		})
	}
}

func TestExportInvalidFormat(t *testing.T) {
	setupTestCLI(t)

	if _, err := run(t, "export", "markdown"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestMigrateCmd(t *testing.T) {
	dataDir := setupTestCLI(t)
	seedActivity(t, dataDir, models.NewActivity(models.CategorySteps, 777))

	target := filepath.Join(t.TempDir(), "copy", "fittrack.db")
	if _, err := run(t, "migrate", "--to", target); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	dst, err := storage.Open(target)
	if err != nil {
		t.Fatalf("Failed to open target: %v", err)
	}
	activities, err := dst.ListActivities(storage.ActivityFilter{})
	dst.Close()
	if err != nil {
		t.Fatalf("ListActivities failed: %v", err)
	}
	if len(activities) != 1 || activities[0].Value != 777 {
		t.Errorf("Unexpected migrated activities: %+v", activities)
	}

	if _, err := run(t, "migrate", "--to", target); err == nil {
		t.Error("Expected error for non-empty target without --force")
	}
}

func TestMigrateCmdRequiresTarget(t *testing.T) {
	setupTestCLI(t)

	if _, err := run(t, "migrate"); err == nil {
		t.Error("Expected error without --to")
	}
}

func TestConfigSetAndShow(t *testing.T) {
	dataDir := setupTestCLI(t)

	if _, err := run(t, "config", "set", "max_page_size", "3"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if _, err := run(t, "config", "set", "max_page_size", "zero"); err == nil {
		t.Error("Expected error for invalid page size")
	}
	if _, err := run(t, "config", "set", "colour", "blue"); err == nil {
		t.Error("Expected error for unknown key")
	}

	c, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.MaxPageSize != 3 {
		t.Errorf("MaxPageSize = %d, want 3", c.MaxPageSize)
	}

	out, err := run(t, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "max_page_size") || !strings.Contains(out, "3") {
		t.Errorf("Expected page size in output, got:\n%s", out)
	}

	// config commands never open the data stores
	if _, err := os.Stat(filepath.Join(dataDir, "fittrack.db")); !os.IsNotExist(err) {
		t.Errorf("Expected no database to be created, stat err = %v", err)
	}

	out, err = run(t, "workout", "list", "--limit", "10")
	if err != nil {
		t.Fatalf("workout list failed: %v", err)
	}
	if !strings.Contains(out, "1-3 of 7") {
		t.Errorf("Expected configured page cap, got:\n%s", out)
	}
}

func TestConfigCatalogURLRejectsScheme(t *testing.T) {
	setupTestCLI(t)

	if _, err := run(t, "config", "set", "catalog_url", "ftp://example.com"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if _, err := run(t, "today"); err == nil {
		t.Error("Expected setup to fail for unsupported catalog scheme")
	}
}

func TestFullWorkflow(t *testing.T) {
	setupTestCLI(t)

	steps := []struct {
		args []string
		want string
	}{
		{[]string{"prefs", "set", "display_name", "Sam"}, ""},
		{[]string{"add", "steps", "8000"}, "8000 steps"},
		{[]string{"add", "walking", "30"}, "30 min"},
		{[]string{"add", "calories", "300"}, "300 kcal"},
		{[]string{"list"}, "walking"},
		{[]string{"today"}, "Today for Sam"},
		{[]string{"today"}, "[################----]  80% 8000 / 10000"},
		{[]string{"today"}, "422 / 2000 kcal"},
		{[]string{"workout", "list"}, "from static-catalog"},
	}

	for _, step := range steps {
		out, err := run(t, step.args...)
		if err != nil {
			t.Fatalf("%v failed: %v\n%s", step.args, err, out)
		}
		if !strings.Contains(out, step.want) {
			t.Errorf("%v: expected %q in output, got:\n%s", step.args, step.want, out)
		}
	}
}
