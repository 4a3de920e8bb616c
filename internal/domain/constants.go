package domain

// Turn is a group's preferred block of the day.
type Turn string

const (
	Morning   Turn = "MORNING"
	Afternoon Turn = "AFTERNOON"
	Night     Turn = "NIGHT"
	NightA    Turn = "NIGHT_A"
	NightB    Turn = "NIGHT_B"
)

// TurnRange is an inclusive [Start, End] slot range. End is the last slot a
// block may occupy, not merely the last slot a demand may start at (see
// DESIGN.md, turn-range semantics).
type TurnRange struct {
	Start int
	End   int
}

// TurnRanges is fixed per spec §4.3; it does not scale with Configuration's
// slot count.
var TurnRanges = map[Turn]TurnRange{
	Morning:   {Start: 0, End: 7},
	Afternoon: {Start: 7, End: 18},
	Night:     {Start: 13, End: 18},
	NightA:    {Start: 13, End: 18},
	NightB:    {Start: 13, End: 18},
}

// LongMorningMinSlots is the duration at or above which a MORNING demand
// is forced to start at slot 0 by the constructor and (with high
// probability) by mutation.
const LongMorningMinSlots = 5

// Penalty weights, fixed constants from spec §4.4.
const (
	PenaltyBreak             = 10000 // per overlapping block
	PenaltyOutOfBounds       = 5000
	PenaltyCapacity          = 5000
	PenaltyProfessorConflict = 5000 // per slot
	PenaltyRoomConflict      = 5000 // per slot
	PenaltyGroupConflict     = 5000 // per slot
	PenaltyMaxHoursExcess    = 5000 // per excess slot
	PenaltyOutOfTurn         = 10   // per block, soft
	PenaltyLateStart         = 5    // per slot of gap, soft
)

// TournamentSize is the number of candidates sampled (with replacement) for
// each tournament-selection draw, per spec §4.5.
const TournamentSize = 5
