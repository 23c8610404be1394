// Package graph builds the student-conflict graph over session
// instances: an edge marks two sessions that cannot safely share a
// (day, slot) because they have a student in common. cmd/inspect uses
// it to report conflict density as a diagnostic, independent of
// whatever (day, slot) the CP solver actually chose.
package graph

import (
	"fmt"

	"classtable/internal/dataset"
)

// ConflictGraph is an undirected graph over session uids.
type ConflictGraph struct {
	Nodes         map[string]bool
	AdjacencyList map[string]map[string]bool
}

// New returns an empty conflict graph.
func New() *ConflictGraph {
	return &ConflictGraph{
		Nodes:         make(map[string]bool),
		AdjacencyList: make(map[string]map[string]bool),
	}
}

// AddNode registers a session uid as a vertex.
func (g *ConflictGraph) AddNode(uid string) {
	if !g.Nodes[uid] {
		g.Nodes[uid] = true
		g.AdjacencyList[uid] = make(map[string]bool)
	}
}

// AddEdge marks uid1 and uid2 as conflicting.
func (g *ConflictGraph) AddEdge(uid1, uid2 string) {
	if uid1 == uid2 || !g.Nodes[uid1] || !g.Nodes[uid2] {
		return
	}
	g.AdjacencyList[uid1][uid2] = true
	g.AdjacencyList[uid2][uid1] = true
}

// Degree returns the number of sessions uid conflicts with.
func (g *ConflictGraph) Degree(uid string) int {
	return len(g.AdjacencyList[uid])
}

// BuildStudentConflicts connects every pair of sessions that share at
// least one student — the set of edges the student-level soft
// constraints (slot overlap, subject-per-day, daily load) must resolve
// one way or another.
func BuildStudentConflicts(ds *dataset.Dataset) *ConflictGraph {
	g := New()
	for _, s := range ds.Sessions {
		g.AddNode(s.UID)
	}

	byStudent := make(map[string][]string)
	for _, s := range ds.Sessions {
		for _, student := range s.Students {
			byStudent[student] = append(byStudent[student], s.UID)
		}
	}

	for _, uids := range byStudent {
		for i := 0; i < len(uids); i++ {
			for j := i + 1; j < len(uids); j++ {
				g.AddEdge(uids[i], uids[j])
			}
		}
	}

	return g
}

// Density reports |E| / (|V|*(|V|-1)/2), the fraction of possible
// conflict edges actually present.
func (g *ConflictGraph) Density() float64 {
	v := len(g.Nodes)
	if v < 2 {
		return 0
	}
	e := 0
	for _, neighbors := range g.AdjacencyList {
		e += len(neighbors)
	}
	e /= 2
	return float64(2*e) / float64(v*(v-1))
}

// Summary renders a one-line report, grounded on the teacher's
// PrintStats diagnostic output.
func (g *ConflictGraph) Summary() string {
	v := len(g.Nodes)
	e := 0
	for _, neighbors := range g.AdjacencyList {
		e += len(neighbors)
	}
	e /= 2
	return fmt.Sprintf("sessions=%d conflicts=%d density=%.4f", v, e, g.Density())
}
