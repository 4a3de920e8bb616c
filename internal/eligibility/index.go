// Package eligibility indexes which professors may teach a course and which
// rooms satisfy a room type, per spec §4.2.
package eligibility

import "timetable-ga/internal/domain"

// Index buckets professors by course and rooms by type.
type Index struct {
	professorsByCourse map[string][]string
	roomsByType        map[domain.RoomType][]string
	allProfessorIDs    []string
	allRoomIDs         []string
}

// Build copies Course.EligibleProfessorIDs verbatim per course and buckets
// Rooms by Type. Both lookups may return an empty slice — callers handle
// that themselves: the constructor applies the deterministic "first global
// professor/room" fallback, and mutation leaves the attribute unchanged;
// this is a data-quality degradation, not a runtime error (spec §4.2, §7).
func Build(courses []domain.Course, rooms []domain.Room) *Index {
	idx := &Index{
		professorsByCourse: make(map[string][]string, len(courses)),
		roomsByType:        make(map[domain.RoomType][]string),
	}
	for _, c := range courses {
		profs := make([]string, len(c.EligibleProfessorIDs))
		copy(profs, c.EligibleProfessorIDs)
		idx.professorsByCourse[c.ID] = profs
	}
	for _, r := range rooms {
		idx.roomsByType[r.Type] = append(idx.roomsByType[r.Type], r.ID)
		idx.allRoomIDs = append(idx.allRoomIDs, r.ID)
	}
	return idx
}

// SetAllProfessorIDs records the global professor population used for the
// empty-eligible-set fallback (spec §4.2: "pick the first global
// professor"). Separate from Build because professors and courses are
// loaded independently.
func (idx *Index) SetAllProfessorIDs(ids []string) {
	idx.allProfessorIDs = ids
}

// ProfessorsFor returns the eligible professor ids for a course, in input
// order. Possibly empty.
func (idx *Index) ProfessorsFor(courseID string) []string {
	return idx.professorsByCourse[courseID]
}

// RoomsFor returns the room ids of the given type. Possibly empty.
func (idx *Index) RoomsFor(roomType domain.RoomType) []string {
	return idx.roomsByType[roomType]
}

// FallbackProfessor returns the first globally known professor id, or ""
// if none exist.
func (idx *Index) FallbackProfessor() string {
	if len(idx.allProfessorIDs) == 0 {
		return ""
	}
	return idx.allProfessorIDs[0]
}

// FallbackRoom returns the first globally known room id, or "" if none
// exist.
func (idx *Index) FallbackRoom() string {
	if len(idx.allRoomIDs) == 0 {
		return ""
	}
	return idx.allRoomIDs[0]
}
