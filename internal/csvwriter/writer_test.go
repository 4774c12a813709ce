package csvwriter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/XML-status-summary/internal/types"
)

func TestWriteTo(t *testing.T) {
	tests := []struct {
		name    string
		records []types.Record
		want    string
	}{
		{
			name: "header_only",
			want: "itemCode,filename,status\n",
		},
		{
			name: "plain_rows_keep_order",
			records: []types.Record{
				{ItemCode: "B2", SourceName: "b.xml", Status: "Closed"},
				{ItemCode: "", SourceName: "a.xml", Status: "Open"},
			},
			want: "itemCode,filename,status\nB2,b.xml,Closed\n,a.xml,Open\n",
		},
		{
			name: "quoting",
			records: []types.Record{
				{ItemCode: "A,1", SourceName: "q.xml", Status: `say "hi"`},
			},
			want: "itemCode,filename,status\n\"A,1\",q.xml,\"say \"\"hi\"\"\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteTo(&buf, tt.records))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	records := []types.Record{
		{ItemCode: "AB-9", SourceName: "one.xml", Status: "Approved"},
		{ItemCode: "", SourceName: "two.xml", Status: "On hold, pending"},
		{ItemCode: `X"Y`, SourceName: "three, four.xml", Status: "line one\nline two"},
		{ItemCode: " 12 ", SourceName: "five.xml", Status: "  padded  "},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Write(path, records), "write should succeed")

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err, "output should be valid CSV")
	require.Len(t, rows, len(records)+1, "should have header plus one row per record")
	assert.Equal(t, Header, rows[0])
	for i, record := range records {
		assert.Equal(t, record.Fields(), rows[i+1], "row %d should round-trip", i+1)
	}
}

func TestWriteTruncatesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("stale\n"), 100), 0o644))

	require.NoError(t, Write(path, []types.Record{{ItemCode: "A", SourceName: "a.xml", Status: "S"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "itemCode,filename,status\nA,a.xml,S\n", string(data))
}

func TestWriteFailure(t *testing.T) {
	dir := t.TempDir()

	err := Write(dir, nil)
	require.Error(t, err, "writing to a directory should fail")
	assert.True(t, errors.Is(err, types.ErrWrite), "error should be marked as a write error")
	assert.Contains(t, err.Error(), dir, "error should name the output path")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteToFailure(t *testing.T) {
	err := WriteTo(failingWriter{}, []types.Record{{SourceName: "a.xml", Status: "S"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrWrite))
	assert.Contains(t, err.Error(), "disk full")
}
