package ga

import (
	"fmt"
	"sort"

	"timetable-ga/internal/domain"
)

// slotKey addresses a single (day, slot) cell for conflict bookkeeping.
type slotKey struct {
	Day  int
	Slot int
}

// Evaluator scores Chromosomes against one Model. It never fails: every
// input, however malformed, maps to a scalar penalty (spec §4.4, §7 kind 1).
type Evaluator struct {
	model *Model
}

// NewEvaluator builds an Evaluator bound to m.
func NewEvaluator(m *Model) *Evaluator { return &Evaluator{model: m} }

// accumulator carries the maps the single pass builds up, shared by Score
// and Conflicts so both walk the chromosome identically.
type slotSet map[slotKey]map[string]struct{}

type accumulator struct {
	profAt         slotSet
	roomAt         slotSet
	groupAt        slotSet
	profTotalSlots map[string]int
	dayStarts      map[string]map[int][]int // demand id -> day -> starting slots
}

func newAccumulator() *accumulator {
	return &accumulator{
		profAt:         make(slotSet),
		roomAt:         make(slotSet),
		groupAt:        make(slotSet),
		profTotalSlots: make(map[string]int),
		dayStarts:      make(map[string]map[int][]int),
	}
}

// Score computes the scalar fitness of c per spec §4.4: zero is perfect,
// every violation subtracts. Higher (closer to zero) is better.
func (e *Evaluator) Score(c *Chromosome) float64 {
	m := e.model
	score := 0.0
	acc := newAccumulator()

	for i := range m.Demands {
		demand := &m.Demands[i]
		gene := c.Genes[i]
		group := m.groupOf(demand)
		room := m.Rooms[gene.RoomID]

		acc.profTotalSlots[gene.ProfessorID] += gene.NumSlots
		acc.recordStart(demand.ID, gene.DayIdx, gene.StartSlotIdx)

		for s := gene.StartSlotIdx; s < gene.StartSlotIdx+gene.NumSlots; s++ {
			if m.Config.IsBreakSlot(s) {
				score -= domain.PenaltyBreak
			}
		}

		if gene.StartSlotIdx+gene.NumSlots > m.Config.TotalSlots() {
			score -= domain.PenaltyOutOfBounds
		}

		if group != nil && room != nil && !room.CanAccommodate(group.NumStudents) {
			score -= domain.PenaltyCapacity
		}

		related := m.relatedGroups(demand)
		for s := gene.StartSlotIdx; s < gene.StartSlotIdx+gene.NumSlots; s++ {
			key := slotKey{Day: gene.DayIdx, Slot: s}

			if acc.profAt.has(key, gene.ProfessorID) {
				score -= domain.PenaltyProfessorConflict
			}
			acc.profAt.add(key, gene.ProfessorID)

			if acc.roomAt.has(key, gene.RoomID) {
				score -= domain.PenaltyRoomConflict
			}
			acc.roomAt.add(key, gene.RoomID)

			if acc.groupAt.hasAny(key, related) {
				score -= domain.PenaltyGroupConflict
			}
			acc.groupAt.add(key, demand.GroupID)
		}

		score -= outOfTurnPenalty(group, gene)
	}

	for profID, total := range acc.profTotalSlots {
		prof := m.Professors[profID]
		if prof == nil {
			continue
		}
		if total > prof.MaxWeeklySlots {
			score -= float64(total-prof.MaxWeeklySlots) * domain.PenaltyMaxHoursExcess
		}
	}

	score -= e.lateStartPenalty(acc)

	return score
}

// outOfTurnPenalty counts the slots of one Assignment that fall outside its
// group's turn range (spec §4.4: "Out-of-turn slot"). Unknown or absent
// turns contribute nothing.
func outOfTurnPenalty(group *domain.Group, gene domain.Assignment) float64 {
	if group == nil {
		return 0
	}
	turnRange, ok := domain.TurnRanges[group.Turn]
	if !ok {
		return 0
	}
	sessionStart := gene.StartSlotIdx
	sessionEnd := gene.StartSlotIdx + gene.NumSlots - 1

	validStart := max(turnRange.Start, sessionStart)
	validEnd := min(turnRange.End, sessionEnd)

	validCount := validEnd - validStart + 1
	if validCount < 0 {
		validCount = 0
	}
	outOfTurn := gene.NumSlots - validCount
	if outOfTurn <= 0 {
		return 0
	}
	return float64(outOfTurn) * domain.PenaltyOutOfTurn
}

// lateStartPenalty charges, per (demand, day), the gap between the turn's
// start and the earliest slot the demand starts that day (spec §4.4: "Early
// Start Preference"). The gap is charged against the first occurrence only
// should a demand ever span more than one starting slot per day.
func (e *Evaluator) lateStartPenalty(acc *accumulator) float64 {
	m := e.model
	total := 0.0
	for demandID, days := range acc.dayStarts {
		demand := m.demandByID(demandID)
		if demand == nil {
			continue
		}
		group := m.groupOf(demand)
		turnStart := 0
		if group != nil {
			if r, ok := domain.TurnRanges[group.Turn]; ok {
				turnStart = r.Start
			}
		}
		for _, starts := range days {
			if len(starts) == 0 {
				continue
			}
			first := starts[0]
			for _, s := range starts[1:] {
				if s < first {
					first = s
				}
			}
			if first > turnStart {
				total += float64(first-turnStart) * domain.PenaltyLateStart
			}
		}
	}
	return total
}

func (a *accumulator) recordStart(demandID string, day, start int) {
	byDay, ok := a.dayStarts[demandID]
	if !ok {
		byDay = make(map[int][]int)
		a.dayStarts[demandID] = byDay
	}
	byDay[day] = append(byDay[day], start)
}

func (s slotSet) has(key slotKey, id string) bool {
	occupants, ok := s[key]
	if !ok {
		return false
	}
	_, found := occupants[id]
	return found
}

func (s slotSet) hasAny(key slotKey, ids map[string]struct{}) bool {
	occupants, ok := s[key]
	if !ok {
		return false
	}
	for occupant := range occupants {
		if _, related := ids[occupant]; related {
			return true
		}
	}
	return false
}

func (s slotSet) add(key slotKey, id string) {
	occupants, ok := s[key]
	if !ok {
		occupants = make(map[string]struct{})
		s[key] = occupants
	}
	occupants[id] = struct{}{}
}

// relatedGroups returns the ancestry-closed set of groups that would
// conflict with demand's group, falling back to the singleton set when the
// group reference is dangling.
func (m *Model) relatedGroups(demand *domain.ClassDemand) map[string]struct{} {
	return m.Ancestry.Related(demand.GroupID)
}

func (m *Model) demandByID(id string) *domain.ClassDemand {
	for i := range m.Demands {
		if m.Demands[i].ID == id {
			return &m.Demands[i]
		}
	}
	return nil
}

// Conflicts re-walks c and returns one human-readable, deduplicated string
// per hard-constraint incident, tagged by kind (spec §4.4, §6). Soft
// preferences never appear here — they never block a schedule, only rank
// it.
func (e *Evaluator) Conflicts(c *Chromosome) []string {
	m := e.model
	acc := newAccumulator()
	seen := make(map[string]struct{})
	var conflicts []string

	emit := func(msg string) {
		if _, ok := seen[msg]; ok {
			return
		}
		seen[msg] = struct{}{}
		conflicts = append(conflicts, msg)
	}

	for i := range m.Demands {
		demand := &m.Demands[i]
		gene := c.Genes[i]
		group := m.groupOf(demand)
		course := m.courseOf(demand)
		room := m.Rooms[gene.RoomID]

		acc.profTotalSlots[gene.ProfessorID] += gene.NumSlots

		courseName := demand.CourseID
		if course != nil {
			courseName = course.Name
		}
		groupName := demand.GroupID
		if group != nil {
			groupName = group.ID
		}

		for s := gene.StartSlotIdx; s < gene.StartSlotIdx+gene.NumSlots; s++ {
			if m.Config.IsBreakSlot(s) {
				emit(fmt.Sprintf("BREAK CONFLICT: %s (Group %s) overlaps with break at slot %d.", courseName, groupName, s))
				break
			}
		}

		if gene.StartSlotIdx+gene.NumSlots > m.Config.TotalSlots() {
			emit(fmt.Sprintf("BOUNDS CONFLICT: %s (Group %s) goes out of time bounds.", courseName, groupName))
		}

		if group != nil && room != nil && !room.CanAccommodate(group.NumStudents) {
			emit(fmt.Sprintf("CAPACITY CONFLICT: %s (%d) too small for %s (%d)", room.ID, room.Capacity, groupName, group.NumStudents))
		}

		related := m.relatedGroups(demand)
		for s := gene.StartSlotIdx; s < gene.StartSlotIdx+gene.NumSlots; s++ {
			key := slotKey{Day: gene.DayIdx, Slot: s}
			timeStr := fmt.Sprintf("Day %d Slot %d", gene.DayIdx, s)

			if acc.profAt.has(key, gene.ProfessorID) {
				emit(fmt.Sprintf("PROF CONFLICT: %s has a clash at %s", gene.ProfessorID, timeStr))
			}
			acc.profAt.add(key, gene.ProfessorID)

			if acc.roomAt.has(key, gene.RoomID) {
				emit(fmt.Sprintf("ROOM CONFLICT: %s has a clash at %s", gene.RoomID, timeStr))
			}
			acc.roomAt.add(key, gene.RoomID)

			if occupants, ok := acc.groupAt[key]; ok {
				for occupant := range occupants {
					if _, isRelated := related[occupant]; isRelated {
						emit(fmt.Sprintf("GROUP CONFLICT: Group %s conflicts with %s at %s", groupName, occupant, timeStr))
					}
				}
			}
			acc.groupAt.add(key, demand.GroupID)
		}
	}

	for profID, total := range acc.profTotalSlots {
		prof := m.Professors[profID]
		if prof == nil {
			continue
		}
		if total > prof.MaxWeeklySlots {
			emit(fmt.Sprintf("MAX HOURS CONFLICT: %s assigned %d slots, limit %d", profID, total, prof.MaxWeeklySlots))
		}
	}

	sort.Strings(conflicts)
	return conflicts
}
