package dataset

import "sort"

// Dataset is the fully expanded, immutable input to the solve
// pipeline. It is built once (by Fixture or Load) and never mutated.
type Dataset struct {
	Days               []Day
	DayOrder           map[Day]int
	SlotsByDay         map[Day][]Slot
	TeacherAvailability map[string]map[DaySlot]bool
	Sessions           []SessionInstance
	Teachers           []string
	Students           []string
}

// IsTeacherAvailable reports whether teacher is free at (day, slot).
func (d *Dataset) IsTeacherAvailable(teacher string, day Day, slot Slot) bool {
	avail, ok := d.TeacherAvailability[teacher]
	if !ok {
		return false
	}
	return avail[DaySlot{Day: day, Slot: slot}]
}

// Build assembles a Dataset from raw templates and an availability map
// expressed as teacher -> day -> allowed slots. slotsByDay restricts
// which slots exist on each day (e.g. Friday may omit early slots).
func Build(days []Day, slotsByDay map[Day][]Slot, availability map[string]map[Day][]Slot, templates []SessionTemplate) *Dataset {
	flatAvail := make(map[string]map[DaySlot]bool, len(availability))
	for teacher, byDay := range availability {
		set := make(map[DaySlot]bool)
		for day, slots := range byDay {
			for _, slot := range slots {
				set[DaySlot{Day: day, Slot: slot}] = true
			}
		}
		flatAvail[teacher] = set
	}

	var sessions []SessionInstance
	teacherSet := make(map[string]bool)
	studentSet := make(map[string]bool)
	for _, t := range templates {
		for _, inst := range ExpandTemplate(t) {
			sessions = append(sessions, inst)
			teacherSet[inst.Teacher] = true
			for _, s := range inst.Students {
				studentSet[s] = true
			}
		}
	}

	order := make(map[Day]int, len(days))
	for i, d := range days {
		order[d] = i
	}

	return &Dataset{
		Days:                days,
		DayOrder:            order,
		SlotsByDay:          slotsByDay,
		TeacherAvailability: flatAvail,
		Sessions:            sessions,
		Teachers:            sortedKeys(teacherSet),
		Students:            sortedKeys(studentSet),
	}
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
