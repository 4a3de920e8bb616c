package ga

import (
	"math/rand"

	"timetable-ga/internal/domain"
)

// NewRandomChromosome builds one syntactically valid Chromosome: for each
// ClassDemand, in fixed input order, it draws a professor, room, day and
// starting slot per spec §4.3. rng must be supplied by the caller so runs
// are reproducible given a fixed seed (Design Notes: "Non-determinism").
func NewRandomChromosome(m *Model, rng *rand.Rand) *Chromosome {
	c := domain.NewChromosome(len(m.Demands))
	for i := range m.Demands {
		demand := &m.Demands[i]
		c.Genes[i] = randomAssignment(m, demand, rng)
	}
	return c
}

// Chromosome is an alias so package ga's API can name domain.Chromosome
// directly; it is the same type.
type Chromosome = domain.Chromosome

func randomAssignment(m *Model, demand *domain.ClassDemand, rng *rand.Rand) domain.Assignment {
	course := m.courseOf(demand)
	group := m.groupOf(demand)

	profID := pickProfessor(m, course, rng)
	roomID := pickRoom(m, demand.RequiredRoomType, rng)
	dayIdx := rng.Intn(len(m.Config.Days))
	startSlot := pickInitialStart(m.Config, group, demand.DurationBlocks, rng)

	return domain.Assignment{
		ClassID:      demand.ID,
		ProfessorID:  profID,
		RoomID:       roomID,
		DayIdx:       dayIdx,
		StartSlotIdx: startSlot,
		NumSlots:     demand.DurationBlocks,
	}
}

func pickProfessor(m *Model, course *domain.Course, rng *rand.Rand) string {
	var eligible []string
	if course != nil {
		eligible = m.Eligibility.ProfessorsFor(course.ID)
	}
	if len(eligible) == 0 {
		return m.Eligibility.FallbackProfessor()
	}
	return eligible[rng.Intn(len(eligible))]
}

func pickRoom(m *Model, roomType domain.RoomType, rng *rand.Rand) string {
	rooms := m.Eligibility.RoomsFor(roomType)
	if len(rooms) == 0 {
		return m.Eligibility.FallbackRoom()
	}
	return rooms[rng.Intn(len(rooms))]
}

// pickInitialStart implements spec §4.3's starting-slot rule: long-morning
// demands force slot 0; otherwise 90% of the time the draw is restricted to
// the group's turn range (half the time taking the range's first slot to
// encourage early starts), and 10% of the time it is uniform over the
// whole day.
func pickInitialStart(cfg *domain.Configuration, group *domain.Group, numSlots int, rng *rand.Rand) int {
	maxStart := maxStartSlot(cfg.TotalSlots(), numSlots)

	if group != nil && group.Turn == domain.Morning && numSlots >= domain.LongMorningMinSlots {
		return 0
	}

	turnRange, hasTurn := domain.TurnRanges[groupTurn(group)]
	if hasTurn && rng.Float64() < 0.9 {
		if start, ok := turnBiasedStart(turnRange, numSlots, rng); ok {
			return start
		}
	}
	return rng.Intn(maxStart + 1)
}

// turnBiasedStart draws a start slot inside the turn's valid sub-range
// [range.Start, range.End-numSlots+1], picking the range's first slot half
// the time. It does not clamp against the whole-day bound: a demand whose
// duration doesn't fit its turn can still land past the last slot, which is
// exactly what the bounds penalty (spec §4.4) exists to catch. Returns
// ok=false when effective_end <= range.Start (which includes a demand that
// exactly fills the turn), in which case the caller falls back to the
// uniform whole-day draw.
func turnBiasedStart(r domain.TurnRange, numSlots int, rng *rand.Rand) (int, bool) {
	effectiveEnd := r.End - numSlots + 1
	if effectiveEnd <= r.Start {
		return 0, false
	}
	if rng.Float64() < 0.5 {
		return r.Start, true
	}
	return r.Start + rng.Intn(effectiveEnd-r.Start+1), true
}

func maxStartSlot(totalSlots, numSlots int) int {
	m := totalSlots - numSlots
	if m < 0 {
		return 0
	}
	return m
}

func groupTurn(group *domain.Group) domain.Turn {
	if group == nil {
		return ""
	}
	return group.Turn
}
