package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, dir string, id ID, content string) {
	t.Helper()
	path := filepath.Join(dir, string(id)+".csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCSVProviderReadsRecords(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, Academic, "student_id,name,gpa\nS001,Aisha,8.7\nS002,Budi,6.4\n")

	p := NewCSVProvider(dir)
	records, err := p.GetRecords(Academic)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{"student_id": "S001", "name": "Aisha", "gpa": "8.7"}, records[0])
	assert.Equal(t, "Budi", records[1]["name"])
}

func TestCSVProviderMissingFileIsEmpty(t *testing.T) {
	p := NewCSVProvider(t.TempDir())

	records, err := p.GetRecords(Welfare)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCSVProviderCachesReads(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, Career, "student_id,target\nS001,software\n")

	p := NewCSVProvider(dir)
	first, err := p.GetRecords(Career)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Delete the file; the cached parse must still serve.
	require.NoError(t, os.Remove(filepath.Join(dir, string(Career)+".csv")))

	second, err := p.GetRecords(Career)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseAcceptsCSVSuffix(t *testing.T) {
	tests := []struct {
		raw    string
		want   ID
		wantOk bool
	}{
		{"academic_data", Academic, true},
		{"academic_data.csv", Academic, true},
		{" Welfare_Data ", Welfare, true},
		{"unknown_data", "", false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.raw)
		assert.Equal(t, tt.wantOk, ok, "Parse(%q)", tt.raw)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.raw)
	}
}

func TestRecordFlatten(t *testing.T) {
	r := Record{"name": "Aisha", "gpa": "8.7", "major": "CS"}
	// Keys sorted: gpa, major, name.
	assert.Equal(t, "8.7 cs aisha", r.Flatten())
}
