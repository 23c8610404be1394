package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() Payload {
	return Payload{
		Days:     []string{"Mon"},
		Slots:    []int{1, 2, 3, 4, 5},
		Teachers: []string{"T1"},
		Students: []string{"S1", "S2"},
		Entries: []EntryPayload{
			{Day: "Mon", Slot: 1, Track: 1, Teacher: "T1", Code: "A", Subject: "Alpha", Students: []string{"S1", "S2"}},
		},
	}
}

func TestWriteJSONProducesValidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteJSON(dir, samplePayload()))

	data, err := os.ReadFile(filepath.Join(dir, "timetable.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"teachers": [`)
	assert.Contains(t, string(data), `"Alpha"`)
}

func TestWriteCSVProducesHeaderAndJoinedStudents(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteCSV(dir, HardFilename, samplePayload()))

	data, err := os.ReadFile(filepath.Join(dir, "timetable.csv"))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Day,Slot,Track,Teacher,Code,Subject,Students")
	assert.Contains(t, content, "S1, S2")
}

func TestWriteCSVRemovesStaleSiblingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteCSV(dir, SoftFilename, samplePayload()))
	_, err := os.Stat(filepath.Join(dir, "relaxed_timetable.csv"))
	require.NoError(t, err)

	require.NoError(t, WriteCSV(dir, HardFilename, samplePayload()))

	_, err = os.Stat(filepath.Join(dir, "timetable.csv"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "relaxed_timetable.csv"))
	assert.True(t, os.IsNotExist(err))
}
