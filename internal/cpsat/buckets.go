// Package cpsat builds and solves the CP model described in the
// design: one boolean decision variable per feasible (session, day,
// slot), exactly-one-per-session, hard teacher/capacity constraints,
// and soft student-conflict constraints with slack when relaxed.
//
// Bucket construction (this file) is pure Go with no solver
// dependency, so the grouping logic — which is the part most likely to
// have an off-by-one — is unit-testable without a CP-SAT backend.
package cpsat

import "classtable/internal/dataset"

// VarKey identifies one decision variable: does session UID run at
// (Day, Slot)?
type VarKey struct {
	UID  string
	Day  dataset.Day
	Slot dataset.Slot
}

// orderedBucket groups variable indices under a compound string key,
// preserving first-seen key order and insertion order within each key
// — both are load-bearing for a deterministic slack-variable creation
// order.
type orderedBucket struct {
	order []string
	items map[string][]int
}

func newOrderedBucket() *orderedBucket {
	return &orderedBucket{items: make(map[string][]int)}
}

func (b *orderedBucket) add(key string, idx int) {
	if _, ok := b.items[key]; !ok {
		b.order = append(b.order, key)
	}
	b.items[key] = append(b.items[key], idx)
}

// Buckets is every grouping the CP model needs, derived once from the
// dataset and its candidate lists.
type Buckets struct {
	Vars []VarKey

	SessionVars map[string][]int // session uid -> variable indices

	TeacherDaySlot    *orderedBucket // hard: teacher non-overlap
	DaySlotCapacity   *orderedBucket // hard: per-slot capacity
	StudentDaySlot    *orderedBucket // soft: student non-overlap
	StudentDaySubject *orderedBucket // soft: per-(student,day,subject) uniqueness
	StudentDayLoad    *orderedBucket // soft: per-(student,day) daily load
}

// BuildBuckets enumerates one variable per (session, day, slot) where
// the teacher is available — using the same candidate lists the
// greedy seeder and solve driver see — and groups their indices by
// every constraint scope the model needs.
func BuildBuckets(ds *dataset.Dataset, cand map[string][]dataset.DaySlot) *Buckets {
	b := &Buckets{
		SessionVars:       make(map[string][]int, len(ds.Sessions)),
		TeacherDaySlot:    newOrderedBucket(),
		DaySlotCapacity:   newOrderedBucket(),
		StudentDaySlot:    newOrderedBucket(),
		StudentDaySubject: newOrderedBucket(),
		StudentDayLoad:    newOrderedBucket(),
	}

	for _, session := range ds.Sessions {
		for _, slot := range cand[session.UID] {
			idx := len(b.Vars)
			b.Vars = append(b.Vars, VarKey{UID: session.UID, Day: slot.Day, Slot: slot.Slot})
			b.SessionVars[session.UID] = append(b.SessionVars[session.UID], idx)

			b.TeacherDaySlot.add(compoundKey(session.Teacher, string(slot.Day), slot.Slot.String()), idx)
			b.DaySlotCapacity.add(compoundKey(string(slot.Day), slot.Slot.String()), idx)

			for _, student := range session.Students {
				b.StudentDaySlot.add(compoundKey(student, string(slot.Day), slot.Slot.String()), idx)
				b.StudentDaySubject.add(compoundKey(student, string(slot.Day), session.Subject), idx)
				b.StudentDayLoad.add(compoundKey(student, string(slot.Day)), idx)
			}
		}
	}

	return b
}

func compoundKey(parts ...string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += "\x1f" + p
	}
	return out
}
