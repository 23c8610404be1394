// Package canon turns a raw session -> (day, slot) assignment into the
// stable, track-annotated entry list the output writers consume.
package canon

import (
	"fmt"
	"sort"

	"classtable/internal/dataset"
)

// Entry is one scheduled session, stripped of its internal uid and
// annotated with its track.
type Entry struct {
	Day      dataset.Day
	Slot     dataset.Slot
	Track    int
	Teacher  string
	Code     string
	Subject  string
	Students []string
}

type uidEntry struct {
	Entry
	uid string
}

// Canonicalize groups assignment by (day, slot), assigns track indices
// 1..N within each group (sorted by teacher, code, uid), and returns
// the final entries sorted by (day, slot, track, teacher, code). It
// returns a fatal error if any (day, slot) group exceeds the per-slot
// capacity — that should be impossible if the model is correct, so
// this check is defense-in-depth against a bug upstream.
func Canonicalize(ds *dataset.Dataset, assignment map[string]dataset.DaySlot) ([]Entry, error) {
	sessionByUID := make(map[string]dataset.SessionInstance, len(ds.Sessions))
	for _, s := range ds.Sessions {
		sessionByUID[s.UID] = s
	}

	groups := make(map[dataset.DaySlot][]uidEntry)
	for uid, slot := range assignment {
		session, ok := sessionByUID[uid]
		if !ok {
			continue
		}
		groups[slot] = append(groups[slot], uidEntry{
			uid: uid,
			Entry: Entry{
				Day:      slot.Day,
				Slot:     slot.Slot,
				Teacher:  session.Teacher,
				Code:     session.Code,
				Subject:  session.Subject,
				Students: session.Students,
			},
		})
	}

	var entries []Entry
	for slot, bucket := range groups {
		sort.Slice(bucket, func(i, j int) bool {
			if bucket[i].Teacher != bucket[j].Teacher {
				return bucket[i].Teacher < bucket[j].Teacher
			}
			if bucket[i].Code != bucket[j].Code {
				return bucket[i].Code < bucket[j].Code
			}
			return bucket[i].uid < bucket[j].uid
		})
		if len(bucket) > dataset.MaxTracks {
			return nil, fmt.Errorf("slot capacity exceeded for %s slot %d: %d sessions", slot.Day, slot.Slot, len(bucket))
		}
		for i, ue := range bucket {
			e := ue.Entry
			e.Track = i + 1
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if ds.DayOrder[a.Day] != ds.DayOrder[b.Day] {
			return ds.DayOrder[a.Day] < ds.DayOrder[b.Day]
		}
		if a.Slot != b.Slot {
			return a.Slot < b.Slot
		}
		if a.Track != b.Track {
			return a.Track < b.Track
		}
		if a.Teacher != b.Teacher {
			return a.Teacher < b.Teacher
		}
		return a.Code < b.Code
	})

	return entries, nil
}
