package ga

import (
	"context"
	"math/rand"
	"sort"
)

// State names the evolution driver's lifecycle position (spec §4.6).
type State string

const (
	StateInitializing State = "INITIALIZING"
	StateEvolving     State = "EVOLVING"
	StateCompleted    State = "COMPLETED"
	StateCancelled    State = "CANCELLED"
)

// ProgressFunc is invoked with (generation, best fitness in that generation)
// every 10 generations and on generation 0; with elitism_count >= 1 that is
// also the best fitness so far. It must not block indefinitely (spec §5).
type ProgressFunc func(generation int, bestFitness float64)

// Result is what Run returns: the best chromosome found, the state the
// driver finished in, and how many generations it actually ran.
type Result struct {
	Best        *Chromosome
	State       State
	Generations int
}

// Driver runs the generational loop over one Model: build an initial
// population, evaluate, select, cross over, mutate, replace, repeat (spec
// §4.6). It is single-threaded and synchronous (spec §5) — the only
// suspension points are the caller-supplied progress callback and ctx.
type Driver struct {
	model     *Model
	evaluator *Evaluator
	rng       *rand.Rand
	progress  ProgressFunc
}

// NewDriver builds a Driver. seed makes construction, selection, crossover
// and mutation reproducible (spec §4.6, "Determinism"). progress may be
// nil.
func NewDriver(m *Model, seed int64, progress ProgressFunc) *Driver {
	return &Driver{
		model:     m,
		evaluator: NewEvaluator(m),
		rng:       rand.New(rand.NewSource(seed)),
		progress:  progress,
	}
}

// Run executes the evolution loop to completion, to cancellation, or to
// max_generations, whichever comes first (spec §4.6, §5).
//
// A population_size of 0 or an elitism_count exceeding population_size, or
// any other malformed Configuration that prevents building a valid initial
// population, surfaces as InvariantViolation rather than a zero Result —
// this is a structural failure (spec §7, kind 2), not a fitness penalty.
func (d *Driver) Run(ctx context.Context, cancel func() bool) (*Result, error) {
	cfg := d.model.Config
	if err := cfg.Validate(); err != nil {
		return nil, newInvariantViolation("invalid configuration: %v", err)
	}
	if len(d.model.Demands) == 0 {
		return nil, newInvariantViolation("no class demands to schedule")
	}

	population := d.initialPopulation()

	generation := 0
	for ; generation < cfg.MaxGenerations; generation++ {
		d.evaluateAll(population)
		sortByFitnessDescending(population)

		best := population[0]

		if d.progress != nil && generation%10 == 0 {
			d.progress(generation, best.Fitness)
		}

		if best.Fitness == 0 {
			return &Result{Best: best, State: StateCompleted, Generations: generation}, nil
		}

		if cancel != nil && cancel() {
			return &Result{State: StateCancelled, Generations: generation}, nil
		}

		select {
		case <-ctx.Done():
			return &Result{State: StateCancelled, Generations: generation}, nil
		default:
		}

		population = d.nextGeneration(population)
	}

	d.evaluateAll(population)
	sortByFitnessDescending(population)
	return &Result{Best: population[0], State: StateCompleted, Generations: generation}, nil
}

func (d *Driver) initialPopulation() []*Chromosome {
	cfg := d.model.Config
	pop := make([]*Chromosome, cfg.PopulationSize)
	for i := range pop {
		pop[i] = NewRandomChromosome(d.model, d.rng)
	}
	return pop
}

func (d *Driver) evaluateAll(population []*Chromosome) {
	for _, c := range population {
		c.Fitness = d.evaluator.Score(c)
		c.FitnessValid = true
	}
}

func sortByFitnessDescending(population []*Chromosome) {
	sort.SliceStable(population, func(i, j int) bool {
		return population[i].Fitness > population[j].Fitness
	})
}

func (d *Driver) nextGeneration(population []*Chromosome) []*Chromosome {
	cfg := d.model.Config
	next := make([]*Chromosome, 0, cfg.PopulationSize)

	for i := 0; i < cfg.ElitismCount && i < len(population); i++ {
		next = append(next, population[i].Clone())
	}

	for len(next) < cfg.PopulationSize {
		p1 := TournamentSelect(population, d.rng)
		p2 := TournamentSelect(population, d.rng)
		child := Crossover(p1, p2, cfg.CrossoverRate, d.rng)
		Mutate(d.model, child, cfg.MutationRate, d.rng)
		next = append(next, child)
	}

	return next
}
