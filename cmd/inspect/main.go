// Command inspect runs the solve pipeline once and prints a
// tabwriter-formatted diagnostic report: per-teacher session counts,
// per-day session counts, and (for relaxed solves) which soft
// constraints likely absorbed slack.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"classtable/internal/canon"
	"classtable/internal/config"
	"classtable/internal/graph"
	"classtable/internal/logging"
	"classtable/internal/metrics"
	"classtable/internal/pipeline"
)

func main() {
	cfg := config.Load()
	log := logging.New(false)
	defer log.Sync()

	result, err := pipeline.Run(cfg, log, metrics.NewRegistry(nil))
	if err != nil {
		log.Fatal("solve failed", zap.Error(err))
	}

	fmt.Printf("solved %d sessions, relaxed=%v\n\n", len(result.Entries), result.Relaxed)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "TEACHER\tSESSIONS")
	for _, teacher := range result.Dataset.Teachers {
		fmt.Fprintf(w, "%s\t%d\n", teacher, countByTeacher(result.Entries, teacher))
	}
	w.Flush()

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tSESSIONS")
	for _, day := range result.Dataset.Days {
		fmt.Fprintf(w, "%s\t%d\n", day, countByDay(result.Entries, string(day)))
	}
	w.Flush()

	if result.Relaxed {
		fmt.Println()
		reportSoftViolations(result.Entries)
	}

	fmt.Println()
	conflicts := graph.BuildStudentConflicts(result.Dataset)
	fmt.Println("STUDENT CONFLICT GRAPH")
	fmt.Printf("  %s\n", conflicts.Summary())
}

func countByTeacher(entries []canon.Entry, teacher string) int {
	n := 0
	for _, e := range entries {
		if e.Teacher == teacher {
			n++
		}
	}
	return n
}

func countByDay(entries []canon.Entry, day string) int {
	n := 0
	for _, e := range entries {
		if string(e.Day) == day {
			n++
		}
	}
	return n
}

// reportSoftViolations re-derives which student-level soft constraints
// were violated in the final entries, since the CP solver's slack
// values are discarded once the solve completes.
func reportSoftViolations(entries []canon.Entry) {
	type slotKey struct {
		day  string
		slot int
	}
	type subjectKey struct {
		student string
		day     string
		subject string
	}
	type loadKey struct {
		student string
		day     string
	}

	slotSeen := make(map[slotKey]map[string]bool)
	subjectSeen := make(map[subjectKey]bool)
	dayLoad := make(map[loadKey]int)

	slotViolations, subjectViolations := 0, 0

	for _, e := range entries {
		sk := slotKey{string(e.Day), int(e.Slot)}
		if slotSeen[sk] == nil {
			slotSeen[sk] = make(map[string]bool)
		}
		for _, student := range e.Students {
			if slotSeen[sk][student] {
				slotViolations++
			}
			slotSeen[sk][student] = true

			subK := subjectKey{student, string(e.Day), e.Subject}
			if subjectSeen[subK] {
				subjectViolations++
			}
			subjectSeen[subK] = true

			dayLoad[loadKey{student, string(e.Day)}]++
		}
	}

	overloadViolations := 0
	for _, count := range dayLoad {
		if count > 3 {
			overloadViolations += count - 3
		}
	}

	fmt.Println("SOFT CONSTRAINT VIOLATIONS")
	fmt.Printf("  student slot overlap:     %d\n", slotViolations)
	fmt.Printf("  student subject-per-day:  %d\n", subjectViolations)
	fmt.Printf("  student daily overload:   %d\n", overloadViolations)
}
