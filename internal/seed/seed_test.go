package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"classtable/internal/dataset"
)

func TestBuildPlacesSimpleFeasibleSessionsOnDistinctSlots(t *testing.T) {
	// S1: one teacher available Mon slots 1-2, two singleton sessions.
	ds := dataset.Build(
		[]dataset.Day{dataset.Monday},
		map[dataset.Day][]dataset.Slot{dataset.Monday: {1, 2}},
		map[string]map[dataset.Day][]dataset.Slot{"A": {dataset.Monday: {1, 2}}},
		[]dataset.SessionTemplate{
			{Teacher: "A", Code: "A_1", Subject: "Math", Multiplicity: 1, Students: []string{"S1"}},
			{Teacher: "A", Code: "A_2", Subject: "Math", Multiplicity: 1, Students: []string{"S2"}},
		},
	)

	result := Build(ds)

	require.NotNil(t, result)
	require.Len(t, result, 2)
	p1, p2 := result["A_1_A_1"], result["A_2_A_1"]
	assert.Equal(t, dataset.Monday, p1.Day)
	assert.Equal(t, dataset.Monday, p2.Day)
	assert.NotEqual(t, p1.Slot, p2.Slot)
}

func TestBuildFillsCapacityExactlyFour(t *testing.T) {
	// S2: 4 distinct teachers all available Mon slot 1, disjoint students.
	avail := map[string]map[dataset.Day][]dataset.Slot{}
	var templates []dataset.SessionTemplate
	teachers := []string{"T1", "T2", "T3", "T4"}
	for i, teacher := range teachers {
		avail[teacher] = map[dataset.Day][]dataset.Slot{dataset.Monday: {1}}
		templates = append(templates, dataset.SessionTemplate{
			Teacher: teacher, Code: "C" + string(rune('1'+i)), Subject: "Math", Multiplicity: 1,
			Students: []string{"S" + string(rune('1'+i))},
		})
	}
	ds := dataset.Build([]dataset.Day{dataset.Monday}, map[dataset.Day][]dataset.Slot{dataset.Monday: {1}}, avail, templates)

	result := Build(ds)

	require.Len(t, result, 4)
	for _, p := range result {
		assert.Equal(t, dataset.Monday, p.Day)
		assert.Equal(t, dataset.Slot(1), p.Slot)
	}
}

func TestBuildFailsOnCapacityOverflow(t *testing.T) {
	// S3: 5 teachers all only available Mon slot 1 -> capacity 4 forces a failure.
	avail := map[string]map[dataset.Day][]dataset.Slot{}
	var templates []dataset.SessionTemplate
	for i := 0; i < 5; i++ {
		teacher := "T" + string(rune('1'+i))
		avail[teacher] = map[dataset.Day][]dataset.Slot{dataset.Monday: {1}}
		templates = append(templates, dataset.SessionTemplate{
			Teacher: teacher, Code: "C" + string(rune('1'+i)), Subject: "Math", Multiplicity: 1,
			Students: []string{"S" + string(rune('1'+i))},
		})
	}
	ds := dataset.Build([]dataset.Day{dataset.Monday}, map[dataset.Day][]dataset.Slot{dataset.Monday: {1}}, avail, templates)

	assert.Nil(t, Build(ds))
}

func TestBuildFailsOnStudentConflictWithNoAlternativeSlot(t *testing.T) {
	// S4: two overlapping-student sessions, both teachers only available Mon slot 1.
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

	assert.Nil(t, Build(ds))
}

func TestBuildReturnsNilWhenASessionHasNoCandidates(t *testing.T) {
	ds := dataset.Build(
		[]dataset.Day{dataset.Monday},
		map[dataset.Day][]dataset.Slot{dataset.Monday: {1}},
		map[string]map[dataset.Day][]dataset.Slot{},
		[]dataset.SessionTemplate{
			{Teacher: "Ghost", Code: "G_1", Subject: "Math", Multiplicity: 1, Students: []string{"S1"}},
		},
	)

	assert.Nil(t, Build(ds))
}
