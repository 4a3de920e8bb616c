package ga

import (
	"math/rand"
	"testing"

	"timetable-ga/internal/domain"

	"github.com/stretchr/testify/require"
)

func samplePopulation(fitnesses ...float64) []*Chromosome {
	pop := make([]*Chromosome, len(fitnesses))
	for i, f := range fitnesses {
		pop[i] = &Chromosome{Genes: []domain.Assignment{{ClassID: "D1"}}, Fitness: f, FitnessValid: true}
	}
	return pop
}

func TestTournamentSelectPicksHighestFitnessSampled(t *testing.T) {
	pop := samplePopulation(-100, -50, 0, -30, -10)
	rng := rand.New(rand.NewSource(1))

	seenZero := false
	for i := 0; i < 200; i++ {
		winner := TournamentSelect(pop, rng)
		require.LessOrEqual(t, winner.Fitness, 0.0)
		if winner.Fitness == 0 {
			seenZero = true
		}
	}
	require.True(t, seenZero, "best chromosome should win at least one tournament across many trials")
}

func TestCrossoverRespectsRateZero(t *testing.T) {
	p1 := &Chromosome{Genes: []domain.Assignment{{ClassID: "A"}, {ClassID: "B"}}}
	p2 := &Chromosome{Genes: []domain.Assignment{{ClassID: "X"}, {ClassID: "Y"}}}
	rng := rand.New(rand.NewSource(1))

	child := Crossover(p1, p2, 0.0, rng)
	require.Equal(t, p1.Genes, child.Genes)
}

func TestCrossoverDoesNotMutateParents(t *testing.T) {
	p1 := &Chromosome{Genes: []domain.Assignment{{ClassID: "A", DayIdx: 1}, {ClassID: "B", DayIdx: 2}}}
	p2 := &Chromosome{Genes: []domain.Assignment{{ClassID: "A", DayIdx: 9}, {ClassID: "B", DayIdx: 9}}}
	rng := rand.New(rand.NewSource(2))

	child := Crossover(p1, p2, 1.0, rng)
	child.Genes[0].DayIdx = 77

	require.Equal(t, 1, p1.Genes[0].DayIdx)
	require.Equal(t, 9, p2.Genes[0].DayIdx)
}

func TestMutateChangesSomeGeneWhenRateOne(t *testing.T) {
	m := multiDemandModel(1, 1, 0, 0, 1.0)
	c := feasibleChromosome()
	before := c.Genes[0]
	rng := rand.New(rand.NewSource(5))

	changed := false
	for i := 0; i < 30; i++ {
		Mutate(m, c, 1.0, rng)
		if c.Genes[0] != before {
			changed = true
		}
		c.Genes[0] = before
	}
	require.True(t, changed)
}

func TestMutateNoopWhenRateZero(t *testing.T) {
	m := trivialModel()
	c := feasibleChromosome()
	before := c.Clone()
	rng := rand.New(rand.NewSource(5))

	Mutate(m, c, 0.0, rng)
	require.Equal(t, before.Genes, c.Genes)
}
