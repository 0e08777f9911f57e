package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/showcase/pkg/arrange"
	"github.com/pluqqy/showcase/pkg/models"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	oldOut, oldErr := stdout, stderr
	stdout, stderr = out, errOut
	t.Cleanup(func() {
		stdout, stderr = oldOut, oldErr
		SetGlobalFlags(false, false, false)
	})
	return out, errOut
}

func TestPrintHelpersPlain(t *testing.T) {
	out, errOut := captureOutput(t)
	SetGlobalFlags(false, true, false)

	PrintSuccess("saved %s", "a.json")
	PrintInfo("%d cards", 3)
	PrintWarning("careful")
	PrintError("failed: %v", "boom")

	assert.Equal(t, "OK: saved a.json\nINFO: 3 cards\n", out.String())
	assert.Equal(t, "WARNING: careful\nERROR: failed: boom\n", errOut.String())
}

func TestPrintHelpersQuiet(t *testing.T) {
	out, errOut := captureOutput(t)
	SetGlobalFlags(true, true, false)

	PrintSuccess("hidden")
	PrintInfo("hidden")
	PrintError("shown")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "shown")
}

func TestConfirm(t *testing.T) {
	captureOutput(t)
	oldIn := stdin
	t.Cleanup(func() { stdin = oldIn })

	tests := []struct {
		input      string
		defaultYes bool
		want       bool
	}{
		{"y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"Y", false, true},
	}
	for _, tt := range tests {
		stdin = strings.NewReader(tt.input)
		got, err := Confirm("Overwrite?", tt.defaultYes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}

	SetGlobalFlags(false, false, true)
	stdin = strings.NewReader("")
	got, err := Confirm("Overwrite?", false)
	require.NoError(t, err)
	assert.True(t, got, "--yes skips the prompt")
}

func TestOutputResults(t *testing.T) {
	data := map[string]int{"cards": 2}

	var buf bytes.Buffer
	require.NoError(t, OutputResults(&buf, "json", data))
	assert.Equal(t, "{\n  \"cards\": 2\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, OutputResults(&buf, "yaml", data))
	assert.Equal(t, "cards: 2\n", buf.String())

	assert.Error(t, OutputResults(&buf, "xml", data))
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("#", "Type")
	table.Row("0", "Profile")
	table.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "#  Type", strings.TrimSpace(lines[0]))
	assert.Equal(t, "0  Profile", lines[2])
}

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "abcd...", TruncateString("abcdefghij", 7))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
	assert.Equal(t, `{ "a": 1 }`, OneLine("{\n  \"a\": 1\n}"))
}

func testCatalog() *models.Catalog {
	return models.NewCatalog(
		[]string{"Section", "Note"},
		[]string{"4x4", "2x2"},
		map[string][]string{"Section": {"title"}, "Note": {"text"}},
		nil,
		arrange.DefaultGrid,
	)
}

func TestValidators(t *testing.T) {
	catalog := testCatalog()

	assert.NoError(t, ValidateCardType(catalog, "Note"))
	assert.Error(t, ValidateCardType(catalog, "Banner"))

	assert.NoError(t, ValidateShape(catalog, "2x2"))
	assert.Error(t, ValidateShape(catalog, "2x3"), "well formed but not in the catalog")
	assert.ErrorIs(t, ValidateShape(catalog, "wide"), arrange.ErrMalformedShape)

	assert.NoError(t, ValidateOutputFormat("yaml"))
	assert.Error(t, ValidateOutputFormat("xml"))

	assert.NoError(t, ValidateGrid(arrange.Grid{Rows: 1, Cols: 1}))
	assert.Error(t, ValidateGrid(arrange.Grid{Rows: 0, Cols: 8}))

	dir := t.TempDir()
	file := filepath.Join(dir, "a.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0644))
	assert.NoError(t, ValidateFilePath(file))
	assert.Error(t, ValidateFilePath(dir))
	assert.Error(t, ValidateFilePath(filepath.Join(dir, "missing.json")))
}

func newFlagCommand(args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("settings", "", "")
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("theme", "", "")
	_ = cmd.Flags().Parse(args)
	return cmd
}

func TestCommandContextDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	ctx, err := NewCommandContext(newFlagCommand())
	require.NoError(t, err)
	assert.Equal(t, arrange.Grid{Rows: 50, Cols: 8}, ctx.Grid())
	assert.Equal(t, "showcase.json", ctx.DocumentPath(nil))
	assert.Equal(t, "mine.json", ctx.DocumentPath([]string{"mine.json"}))

	// no metadata.toml in the working directory: the built-in catalog is used
	catalog, err := ctx.Catalog()
	require.NoError(t, err)
	assert.Equal(t, "Section", catalog.FullRowType)
	assert.Equal(t, "9", catalog.Color("Section"))
}

func TestCommandContextOverrides(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("preview:\n  cols: 4\n"), 0644))

	ctx, err := NewCommandContext(newFlagCommand(
		"--settings", settings,
		"--config", filepath.Join(dir, "missing.toml"),
		"--theme", "paper",
	))
	require.NoError(t, err)
	assert.Equal(t, arrange.Grid{Rows: 50, Cols: 4}, ctx.Grid())
	assert.Equal(t, "paper", ctx.Settings.Catalog.Theme)

	_, err = ctx.Catalog()
	assert.Error(t, err, "an explicitly named catalog must exist")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
