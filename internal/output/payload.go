// Package output renders a solved timetable to the JSON and CSV shapes
// external collaborators consume, the way internal/exporter rendered
// the teacher's schedule to JSON.
package output

import "classtable/internal/canon"

// EntryPayload is the wire shape of one canon.Entry.
type EntryPayload struct {
	Day      string   `json:"day"`
	Slot     int      `json:"slot"`
	Track    int      `json:"track"`
	Teacher  string   `json:"teacher"`
	Code     string   `json:"code"`
	Subject  string   `json:"subject"`
	Students []string `json:"students"`
}

// Payload is the full output document: entries plus the metadata an
// HTTP front needs to render axes without re-deriving them.
type Payload struct {
	Days     []string       `json:"days"`
	Slots    []int          `json:"slots"`
	Entries  []EntryPayload `json:"entries"`
	Teachers []string       `json:"teachers"`
	Students []string       `json:"students"`
}

// BuildPayload assembles the wire payload from canonicalized entries
// and the dataset's day/teacher/student axes.
func BuildPayload(days []string, slots []int, teachers, students []string, entries []canon.Entry) Payload {
	out := make([]EntryPayload, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryPayload{
			Day:      string(e.Day),
			Slot:     int(e.Slot),
			Track:    e.Track,
			Teacher:  e.Teacher,
			Code:     e.Code,
			Subject:  e.Subject,
			Students: e.Students,
		})
	}
	return Payload{
		Days:     days,
		Slots:    slots,
		Entries:  out,
		Teachers: teachers,
		Students: students,
	}
}
