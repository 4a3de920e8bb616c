package domain

// Assignment is one gene: the scheduling decision for a single ClassDemand.
// The constructor and the genetic operators always keep DayIdx inside the
// configured days and StartSlotIdx non-negative. Mutation also clamps
// StartSlotIdx to the last start that fits the day; the constructor's
// turn-biased draw does not, so a freshly built gene can run past the last
// slot, which the evaluator's bounds penalty charges. Constraint violations
// are expressed only as fitness penalties (Design Notes, §4.5).
type Assignment struct {
	ClassID      string
	ProfessorID  string
	RoomID       string
	DayIdx       int
	StartSlotIdx int
	NumSlots     int
}

// Chromosome is an ordered sequence of Assignments, one per ClassDemand, in
// ClassDemand order. FitnessValid is false until an evaluator score has
// been cached in Fitness; the driver always evaluates before reading it.
type Chromosome struct {
	Genes        []Assignment
	Fitness      float64
	FitnessValid bool
}

// NewChromosome allocates a Chromosome with n genes, all zero-valued.
func NewChromosome(n int) *Chromosome {
	return &Chromosome{Genes: make([]Assignment, n)}
}

// Clone returns a deep copy. A Chromosome is a flat value-typed sequence
// plus a cached score — "deep copy" reduces to copying the gene slice
// (Design Notes, "Deep copy of chromosomes").
func (c *Chromosome) Clone() *Chromosome {
	genes := make([]Assignment, len(c.Genes))
	copy(genes, c.Genes)
	return &Chromosome{
		Genes:        genes,
		Fitness:      c.Fitness,
		FitnessValid: c.FitnessValid,
	}
}

// Len returns the number of genes (= number of ClassDemands).
func (c *Chromosome) Len() int {
	return len(c.Genes)
}
