package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// HardFilename is written when the hard (non-relaxed) phase solved.
	HardFilename = "timetable"
	// SoftFilename is written when only the relaxed phase solved.
	SoftFilename = "relaxed_timetable"
)

// WriteJSON renders payload to <dir>/timetable.json with stable,
// indented field order.
func WriteJSON(dir string, payload Payload) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling timetable payload: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, "timetable.json"), data, 0644)
}

// WriteCSV renders payload's entries to <dir>/<base>.csv, one row per
// entry in canonical order, and deletes the stale sibling file from
// the other phase if it exists.
func WriteCSV(dir string, base string, payload Payload) error {
	path := filepath.Join(dir, base+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Day", "Slot", "Track", "Teacher", "Code", "Subject", "Students"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range payload.Entries {
		row := []string{
			e.Day,
			strconv.Itoa(e.Slot),
			strconv.Itoa(e.Track),
			e.Teacher,
			e.Code,
			e.Subject,
			strings.Join(e.Students, ", "),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	stale := SoftFilename
	if base == SoftFilename {
		stale = HardFilename
	}
	stalePath := filepath.Join(dir, stale+".csv")
	if err := os.Remove(stalePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale %s: %w", stalePath, err)
	}
	return nil
}
