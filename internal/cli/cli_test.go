package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trackerCSV = `Development ID,FSD / Development Name,Dev Type,Process Area,Stage,Status,Planned Start Date,Planned End Date,Actual Start Date,Actual End Date
D-001,Invoice Portal,Report,Finance,Build,On Track,2024-01-10,2024-04-30,2024-01-12,
D-002,Warehouse Sync,Interface,Logistics,Test,Delayed,2024-02-01,2024-05-15,2024-02-05,
D-003,Payroll Cleanup,Enhancement,HR,Design,On Track,,,,
`

func writeTracker(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracker.csv")
	require.NoError(t, os.WriteFile(path, []byte(trackerCSV), 0o644))
	return path
}

func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestOverviewCommand(t *testing.T) {
	out, err := runCommand(t, &App{}, "overview", "--file", writeTracker(t))

	require.NoError(t, err)
	assert.Contains(t, out, "Total projects: 3")
	assert.Contains(t, out, "On Track")
	assert.Contains(t, out, "Delayed")
	assert.Contains(t, out, "Missing planned dates: 1")
}

func TestGanttCommand(t *testing.T) {
	out, err := runCommand(t, &App{}, "gantt", "--file", writeTracker(t))

	require.NoError(t, err)
	assert.Contains(t, out, "D-001")
	assert.Contains(t, out, "D-002")
	// D-003 has no dates and gets no interval.
	assert.NotContains(t, out, "D-003")
	assert.Contains(t, out, "ongoing")
}

func TestCountsCommandDefaultsToStage(t *testing.T) {
	out, err := runCommand(t, &App{}, "counts", "--file", writeTracker(t))

	require.NoError(t, err)
	assert.Contains(t, out, "COUNTS BY STAGE")
	assert.Contains(t, out, "Build")
	assert.Contains(t, out, "Design")
}

func TestCountsCommandExplicitDimension(t *testing.T) {
	out, err := runCommand(t, &App{}, "counts", "--file", writeTracker(t), "--dimension", "dev_type")

	require.NoError(t, err)
	assert.Contains(t, out, "COUNTS BY DEV_TYPE")
	assert.Contains(t, out, "Report")
	assert.Contains(t, out, "Interface")
	assert.Contains(t, out, "Enhancement")
}

func TestCountsCommandRejectsUnknownDimension(t *testing.T) {
	_, err := runCommand(t, &App{}, "counts", "--file", writeTracker(t), "--dimension", "owner")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner")
}

func TestIssuesCommandCleanFile(t *testing.T) {
	out, err := runCommand(t, &App{}, "issues", "--file", writeTracker(t))

	require.NoError(t, err)
	assert.Contains(t, out, "No issues found.")
}

func TestAskCommandWithoutModel(t *testing.T) {
	out, err := runCommand(t, &App{}, "ask", "--file", writeTracker(t), "show delayed projects")

	require.NoError(t, err)
	assert.Contains(t, out, "unavailable")
	assert.Contains(t, out, "matches=1")
	assert.Contains(t, out, "filter=rules")
}

func TestTruncateNameKeepsMultibyteRunesIntact(t *testing.T) {
	long := strings.Repeat("ü", 40)

	got := truncateName(long, 30)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("ü", 29)+"…", got)
}

func TestTruncateNameShortNameUnchanged(t *testing.T) {
	assert.Equal(t, "Invoice Portal", truncateName("Invoice Portal", 30))
}

func TestLoadDatasetUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, _, err := loadDataset(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".txt")
}
