// Package seed implements the greedy seeding heuristic: a fast attempt
// at a fully-feasible assignment, used to hint or force the CP solver.
package seed

import (
	"sort"
	"strconv"

	"classtable/internal/candidates"
	"classtable/internal/dataset"
)

// Placement is where the greedy seeder tentatively put a session.
type Placement = dataset.DaySlot

// state tracks running occupancy while the seeder walks sessions in
// most-constrained-first order. All maps are populated incrementally
// and are read for keys that have not been written yet; a missing
// key's zero value means "not busy yet".
type state struct {
	dayOrder         map[dataset.Day]int
	slotOccupancy    map[dataset.DaySlot]int
	teacherBusy      map[string]bool // teacher|day|slot
	studentSlotBusy  map[string]bool // student|day|slot
	studentSubjectDay map[string]bool // student|day|subject
	studentDailyLoad map[string]int  // student|day
}

func newState(ds *dataset.Dataset) *state {
	return &state{
		dayOrder:          ds.DayOrder,
		slotOccupancy:     make(map[dataset.DaySlot]int),
		teacherBusy:       make(map[string]bool),
		studentSlotBusy:   make(map[string]bool),
		studentSubjectDay: make(map[string]bool),
		studentDailyLoad:  make(map[string]int),
	}
}

func teacherKey(teacher string, ds dataset.DaySlot) string {
	return teacher + "|" + string(ds.Day) + "|" + strconv.Itoa(int(ds.Slot))
}

func studentSlotKey(student string, ds dataset.DaySlot) string {
	return student + "|" + string(ds.Day) + "|" + strconv.Itoa(int(ds.Slot))
}

func studentSubjectKey(student string, day dataset.Day, subject string) string {
	return student + "|" + string(day) + "|" + subject
}

func studentDayKey(student string, day dataset.Day) string {
	return student + "|" + string(day)
}

// Build runs the greedy seeder over ds and returns a mapping of
// session uid to its tentative (day, slot) placement, honoring every
// hard and soft rule. An empty (nil) map means seeding failed: no hint
// is available and the caller must proceed without one.
func Build(ds *dataset.Dataset) map[string]Placement {
	allCandidates := candidates.ForAll(ds)

	sessions := make([]dataset.SessionInstance, len(ds.Sessions))
	copy(sessions, ds.Sessions)
	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		ca, cb := len(allCandidates[a.UID]), len(allCandidates[b.UID])
		if ca != cb {
			return ca < cb
		}
		if len(a.Students) != len(b.Students) {
			return len(a.Students) > len(b.Students)
		}
		if a.Teacher != b.Teacher {
			return a.Teacher < b.Teacher
		}
		return a.Code < b.Code
	})

	st := newState(ds)
	result := make(map[string]Placement, len(sessions))

	for _, session := range sessions {
		cand := append([]dataset.DaySlot(nil), allCandidates[session.UID]...)
		if len(cand) == 0 {
			return nil
		}

		sort.SliceStable(cand, func(i, j int) bool {
			oi, oj := st.slotOccupancy[cand[i]], st.slotOccupancy[cand[j]]
			if oi != oj {
				return oi < oj
			}
			if st.dayOrder[cand[i].Day] != st.dayOrder[cand[j].Day] {
				return st.dayOrder[cand[i].Day] < st.dayOrder[cand[j].Day]
			}
			return cand[i].Slot < cand[j].Slot
		})

		chosen, ok := st.pickFeasible(session, cand)
		if !ok {
			return nil
		}

		result[session.UID] = chosen
		st.commit(session, chosen)
	}

	return result
}

func (st *state) pickFeasible(session dataset.SessionInstance, cand []dataset.DaySlot) (dataset.DaySlot, bool) {
	for _, ds := range cand {
		if st.teacherBusy[teacherKey(session.Teacher, ds)] {
			continue
		}
		if st.slotOccupancy[ds] >= dataset.MaxTracks {
			continue
		}
		if st.violatesStudentRule(session, ds) {
			continue
		}
		return ds, true
	}
	return dataset.DaySlot{}, false
}

func (st *state) violatesStudentRule(session dataset.SessionInstance, ds dataset.DaySlot) bool {
	for _, student := range session.Students {
		if st.studentSlotBusy[studentSlotKey(student, ds)] {
			return true
		}
		if st.studentSubjectDay[studentSubjectKey(student, ds.Day, session.Subject)] {
			return true
		}
		if st.studentDailyLoad[studentDayKey(student, ds.Day)] >= 3 {
			return true
		}
	}
	return false
}

func (st *state) commit(session dataset.SessionInstance, ds dataset.DaySlot) {
	st.slotOccupancy[ds]++
	st.teacherBusy[teacherKey(session.Teacher, ds)] = true
	for _, student := range session.Students {
		st.studentSlotBusy[studentSlotKey(student, ds)] = true
		st.studentSubjectDay[studentSubjectKey(student, ds.Day, session.Subject)] = true
		st.studentDailyLoad[studentDayKey(student, ds.Day)]++
	}
}
