// Package ga implements the constraint-aware evolutionary scheduler: the
// random chromosome constructor, the fitness evaluator, the genetic
// operators, and the generation-loop evolution driver.
package ga

import (
	"timetable-ga/internal/ancestry"
	"timetable-ga/internal/domain"
	"timetable-ga/internal/eligibility"
)

// Model bundles the read-only domain entities and the indices built from
// them. It is shared, read-only, by every constructor call, operator call
// and evaluation within one run (Ownership, spec §3).
type Model struct {
	Demands    []domain.ClassDemand
	Courses    map[string]*domain.Course
	Professors map[string]*domain.Professor
	Rooms      map[string]*domain.Room
	Groups     map[string]*domain.Group
	Config     *domain.Configuration

	Ancestry    *ancestry.Index
	Eligibility *eligibility.Index
}

// NewModel indexes the entity populations and builds the ancestry and
// eligibility indices once, up front (spec §2: components 2–3).
func NewModel(
	courses []domain.Course,
	professors []domain.Professor,
	rooms []domain.Room,
	groups []domain.Group,
	demands []domain.ClassDemand,
	cfg *domain.Configuration,
) *Model {
	m := &Model{
		Demands:    demands,
		Courses:    make(map[string]*domain.Course, len(courses)),
		Professors: make(map[string]*domain.Professor, len(professors)),
		Rooms:      make(map[string]*domain.Room, len(rooms)),
		Groups:     make(map[string]*domain.Group, len(groups)),
		Config:     cfg,
	}
	for i := range courses {
		m.Courses[courses[i].ID] = &courses[i]
	}
	for i := range professors {
		m.Professors[professors[i].ID] = &professors[i]
	}
	for i := range rooms {
		m.Rooms[rooms[i].ID] = &rooms[i]
	}
	for i := range groups {
		m.Groups[groups[i].ID] = &groups[i]
	}

	m.Ancestry = ancestry.Build(groups)
	m.Eligibility = eligibility.Build(courses, rooms)

	allProfIDs := make([]string, len(professors))
	for i, p := range professors {
		allProfIDs[i] = p.ID
	}
	m.Eligibility.SetAllProfessorIDs(allProfIDs)

	return m
}

// groupOf returns the Group for a ClassDemand, or nil if the reference is
// dangling (a data-quality issue the evaluator tolerates: a demand without
// a resolvable group gets no capacity or out-of-turn penalty, its late-start
// gap is measured from slot 0, and its group id still takes part in
// group-conflict checks against demands naming the same id).
func (m *Model) groupOf(demand *domain.ClassDemand) *domain.Group {
	return m.Groups[demand.GroupID]
}

func (m *Model) courseOf(demand *domain.ClassDemand) *domain.Course {
	return m.Courses[demand.CourseID]
}
