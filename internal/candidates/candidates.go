// Package candidates enumerates the (day, slot) pairs a session is
// allowed to occupy, given the teacher's availability and the per-day
// slot table.
package candidates

import "classtable/internal/dataset"

// For returns the ordered list of (day, slot) pairs permitted for
// session: for each day in canonical order, for each slot permitted
// that day in ascending order, the pair is included iff the session's
// teacher is available. The result is stable across runs. An empty
// result means the session is infeasible.
func For(ds *dataset.Dataset, session dataset.SessionInstance) []dataset.DaySlot {
	var out []dataset.DaySlot
	for _, day := range ds.Days {
		for _, slot := range ds.SlotsByDay[day] {
			if ds.IsTeacherAvailable(session.Teacher, day, slot) {
				out = append(out, dataset.DaySlot{Day: day, Slot: slot})
			}
		}
	}
	return out
}

// ForAll computes the candidate list for every session in ds, keyed
// by session uid. An empty slice under a given uid signals fatal
// input-infeasibility — the caller must treat it as such.
func ForAll(ds *dataset.Dataset) map[string][]dataset.DaySlot {
	out := make(map[string][]dataset.DaySlot, len(ds.Sessions))
	for _, session := range ds.Sessions {
		out[session.UID] = For(ds, session)
	}
	return out
}
