package candidates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"classtable/internal/dataset"
)

func TestForRespectsDaySlotTableAndAvailability(t *testing.T) {
	ds := dataset.Build(
		[]dataset.Day{dataset.Monday, dataset.Friday},
		map[dataset.Day][]dataset.Slot{dataset.Monday: {1, 2, 3}, dataset.Friday: {4, 5}},
		map[string]map[dataset.Day][]dataset.Slot{"A": {dataset.Monday: {1, 3}, dataset.Friday: {4}}},
		nil,
	)
	session := dataset.SessionInstance{UID: "s1", Teacher: "A"}

	got := For(ds, session)

	assert.Equal(t, []dataset.DaySlot{
		{Day: dataset.Monday, Slot: 1},
		{Day: dataset.Monday, Slot: 3},
		{Day: dataset.Friday, Slot: 4},
	}, got)
}

func TestForReturnsEmptyWhenTeacherNeverAvailable(t *testing.T) {
	ds := dataset.Build(
		[]dataset.Day{dataset.Monday},
		map[dataset.Day][]dataset.Slot{dataset.Monday: {1}},
		map[string]map[dataset.Day][]dataset.Slot{},
		nil,
	)
	session := dataset.SessionInstance{UID: "s1", Teacher: "ghost"}

	assert.Empty(t, For(ds, session))
}

func TestForAllCoversEverySession(t *testing.T) {
	ds := dataset.Fixture()

	all := ForAll(ds)

	assert.Len(t, all, len(ds.Sessions))
	for _, session := range ds.Sessions {
		_, ok := all[session.UID]
		assert.True(t, ok)
	}
}
