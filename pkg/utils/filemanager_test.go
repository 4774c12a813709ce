package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/XML-status-summary/internal/types"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCheckInputDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	writeFile(t, file, "x")

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "directory", path: dir},
		{name: "missing", path: filepath.Join(dir, "missing"), wantErr: true},
		{name: "regular_file", path: file, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckInputDir(tt.path)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrSetup), "error should be a setup error")
			assert.Contains(t, err.Error(), tt.path)
			assert.NotEmpty(t, errors.GetAllHints(err), "setup errors should carry a hint")
		})
	}
}

func TestDiscoverInputFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.xml"), "<b/>")
	writeFile(t, filepath.Join(dir, "a.xml"), "<a/>")
	writeFile(t, filepath.Join(dir, "c.XML"), "<c/>")
	writeFile(t, filepath.Join(dir, "notes.txt"), "x")
	writeFile(t, filepath.Join(dir, ".xml"), "<hidden/>")
	writeFile(t, filepath.Join(dir, "skip.draft.xml"), "<d/>")
	writeFile(t, filepath.Join(dir, "archive.xml.bak"), "<e/>")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.xml"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	writeFile(t, filepath.Join(dir, "nested", "deep.xml"), "<f/>")

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name: "no_patterns",
			want: []string{"a.xml", "b.xml", "skip.draft.xml"},
		},
		{
			name:     "exclude_pattern",
			patterns: []string{"*.draft.xml"},
			want:     []string{"a.xml", "b.xml"},
		},
		{
			name:     "invalid_pattern_ignored",
			patterns: []string{"["},
			want:     []string{"a.xml", "b.xml", "skip.draft.xml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := DiscoverInputFiles(dir, tt.patterns)
			require.NoError(t, err)

			var names []string
			for _, f := range files {
				assert.Equal(t, dir, filepath.Dir(f), "paths should be inside the input dir")
				names = append(names, filepath.Base(f))
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestDiscoverInputFilesFollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "target.xml")
	writeFile(t, target, "<t/>")
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link.xml")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling.xml")))

	files, err := DiscoverInputFiles(dir, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "link.xml", filepath.Base(files[0]))
}

func TestDiscoverInputFilesMissingDir(t *testing.T) {
	_, err := DiscoverInputFiles(filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrSetup))
}

func TestHasInputExtension(t *testing.T) {
	assert.True(t, HasInputExtension("a.xml"))
	assert.True(t, HasInputExtension("a.b.xml"))
	assert.False(t, HasInputExtension(".xml"))
	assert.False(t, HasInputExtension("a.XML"))
	assert.False(t, HasInputExtension("a.xml.bak"))
	assert.False(t, HasInputExtension("xml"))
}

func TestWriteSummaryLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	start := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	summary := ProcessingSummary{
		RunID:           "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		StartTime:       start,
		EndTime:         start.Add(2 * time.Second),
		InputDir:        "/data/in",
		OutputFile:      "status_output.csv",
		TotalFiles:      3,
		SuccessfulFiles: 2,
		FailedFiles: []FailedFileInfo{
			{InputFile: "/data/in/bad.xml", ErrorType: "ParseError", ErrorMessage: "failed to parse XML in file bad.xml"},
		},
	}

	path, err := WriteSummaryLog(summary, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "processing_summary_20240115_093000_1b4e28ba.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Run ID:         1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	assert.Contains(t, content, "Duration:       2s")
	assert.Contains(t, content, "Successful:     2")
	assert.Contains(t, content, "Failed:         1")
	assert.Contains(t, content, "File:  /data/in/bad.xml")
	assert.Contains(t, content, "Kind:  ParseError")
	assert.Contains(t, content, "End of Summary")
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
}
