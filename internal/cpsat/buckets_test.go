package cpsat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"classtable/internal/candidates"
	"classtable/internal/dataset"
)

func TestBuildBucketsGroupsByTeacherDaySlotAndStudent(t *testing.T) {
	ds := dataset.Build(
		[]dataset.Day{dataset.Monday},
		map[dataset.Day][]dataset.Slot{dataset.Monday: {1}},
		map[string]map[dataset.Day][]dataset.Slot{
			"A": {dataset.Monday: {1}},
			"B": {dataset.Monday: {1}},
		},
		[]dataset.SessionTemplate{
			{Teacher: "A", Code: "A_1", Subject: "Math", Multiplicity: 1, Students: []string{"Shared"}},
			{Teacher: "B", Code: "B_1", Subject: "Science", Multiplicity: 1, Students: []string{"Shared"}},
		},
	)
	cand := candidates.ForAll(ds)

	b := BuildBuckets(ds, cand)

	require.Len(t, b.Vars, 2)
	assert.Len(t, b.SessionVars["A_1_A_1"], 1)
	assert.Len(t, b.SessionVars["B_1_B_1"], 1)

	// Distinct teachers never collide in the teacher bucket.
	assert.Len(t, b.TeacherDaySlot.order, 2)
	// But both sessions collide in the (day, slot) capacity bucket...
	assert.Len(t, b.DaySlotCapacity.order, 1)
	capKey := b.DaySlotCapacity.order[0]
	assert.Len(t, b.DaySlotCapacity.items[capKey], 2)
	// ...and in the shared student's slot bucket.
	assert.Len(t, b.StudentDaySlot.order, 1)
	studentKey := b.StudentDaySlot.order[0]
	assert.Len(t, b.StudentDaySlot.items[studentKey], 2)
}

func TestBuildBucketsSessionWithNoCandidatesContributesNoVars(t *testing.T) {
	ds := dataset.Build(
		[]dataset.Day{dataset.Monday},
		map[dataset.Day][]dataset.Slot{dataset.Monday: {1}},
		map[string]map[dataset.Day][]dataset.Slot{},
		[]dataset.SessionTemplate{
			{Teacher: "Ghost", Code: "G_1", Subject: "Math", Multiplicity: 1, Students: []string{"S"}},
		},
	)
	cand := candidates.ForAll(ds)

	b := BuildBuckets(ds, cand)

	assert.Empty(t, b.Vars)
	assert.Empty(t, b.SessionVars["G_1_Ghost_1"])
}

func TestOrderedBucketPreservesFirstSeenKeyOrder(t *testing.T) {
	b := newOrderedBucket()
	b.add("z", 0)
	b.add("a", 1)
	b.add("z", 2)

	assert.Equal(t, []string{"z", "a"}, b.order)
	assert.Equal(t, []int{0, 2}, b.items["z"])
}
