package ga

import (
	"context"
	"testing"

	"timetable-ga/internal/domain"

	"github.com/stretchr/testify/require"
)

func multiDemandModel(population, generations, elitism int, crossoverRate, mutationRate float64) *Model {
	cfg := &domain.Configuration{
		Days:           []string{"MON", "TUE"},
		TimeSlots:      []string{"08:00-08:45", "08:45-09:30", "09:30-10:15", "10:15-11:00"},
		PopulationSize: population,
		MaxGenerations: generations,
		ElitismCount:   elitism,
		CrossoverRate:  crossoverRate,
		MutationRate:   mutationRate,
	}
	courses := []domain.Course{
		{ID: "C1", EligibleProfessorIDs: []string{"P1", "P2"}},
		{ID: "C2", EligibleProfessorIDs: []string{"P1", "P2"}},
	}
	profs := []domain.Professor{{ID: "P1", MaxWeeklySlots: 10}, {ID: "P2", MaxWeeklySlots: 10}}
	rooms := []domain.Room{{ID: "R1", Capacity: 30, Type: "T"}, {ID: "R2", Capacity: 30, Type: "T"}}
	groups := []domain.Group{{ID: "G1", NumStudents: 30, Turn: domain.Morning}}
	demands := []domain.ClassDemand{
		{ID: "D1", CourseID: "C1", GroupID: "G1", DurationBlocks: 1, RequiredRoomType: "T"},
		{ID: "D2", CourseID: "C2", GroupID: "G1", DurationBlocks: 1, RequiredRoomType: "T"},
	}
	return NewModel(courses, profs, rooms, groups, demands, cfg)
}

func TestRunElitismKeepsBestFitnessNonDecreasing(t *testing.T) {
	m := multiDemandModel(12, 15, 1, 1.0, 1.0)

	var seenBest []float64
	driver := NewDriver(m, 99, func(generation int, bestFitness float64) {
		seenBest = append(seenBest, bestFitness)
	})

	result, err := driver.Run(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, result.Best)

	for i := 1; i < len(seenBest); i++ {
		require.GreaterOrEqual(t, seenBest[i], seenBest[i-1])
	}
}

func TestRunReturnsCompletedOnZeroFitness(t *testing.T) {
	cfg := &domain.Configuration{
		Days:           []string{"MON"},
		TimeSlots:      []string{"08:00-08:45", "08:45-09:30"},
		PopulationSize: 5,
		MaxGenerations: 50,
		ElitismCount:   1,
		CrossoverRate:  0.8,
		MutationRate:   0.2,
	}
	courses := []domain.Course{{ID: "C1", EligibleProfessorIDs: []string{"P1"}}}
	profs := []domain.Professor{{ID: "P1", MaxWeeklySlots: 2}}
	rooms := []domain.Room{{ID: "R1", Capacity: 30, Type: "T"}}
	groups := []domain.Group{{ID: "G1", NumStudents: 30, Turn: domain.Morning}}
	demands := []domain.ClassDemand{{ID: "D1", CourseID: "C1", GroupID: "G1", DurationBlocks: 2, RequiredRoomType: "T"}}
	m := NewModel(courses, profs, rooms, groups, demands, cfg)

	driver := NewDriver(m, 1, nil)
	result, err := driver.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, StateCompleted, result.State)
	require.Zero(t, result.Best.Fitness)
}

func TestRunCancellationPredicateStopsEarly(t *testing.T) {
	m := neverConvergingModel(8, 1000, 1, 0.8, 0.2)
	driver := NewDriver(m, 3, nil)

	called := 0
	cancel := func() bool {
		called++
		return called > 2
	}

	result, err := driver.Run(context.Background(), cancel)
	require.NoError(t, err)
	require.Equal(t, StateCancelled, result.State)
	require.Nil(t, result.Best)
	require.Less(t, result.Generations, 1000)
}

// neverConvergingModel forces both demands onto the sole professor, whose
// weekly cap is smaller than their combined duration: a MAX-HOURS penalty
// is always present, so the driver can never reach fitness 0 and must be
// stopped by cancellation or generation exhaustion instead.
func neverConvergingModel(population, generations, elitism int, crossoverRate, mutationRate float64) *Model {
	cfg := &domain.Configuration{
		Days:           []string{"MON", "TUE"},
		TimeSlots:      []string{"08:00-08:45", "08:45-09:30", "09:30-10:15", "10:15-11:00"},
		PopulationSize: population,
		MaxGenerations: generations,
		ElitismCount:   elitism,
		CrossoverRate:  crossoverRate,
		MutationRate:   mutationRate,
	}
	courses := []domain.Course{
		{ID: "C1", EligibleProfessorIDs: []string{"P1"}},
		{ID: "C2", EligibleProfessorIDs: []string{"P1"}},
	}
	profs := []domain.Professor{{ID: "P1", MaxWeeklySlots: 1}}
	rooms := []domain.Room{{ID: "R1", Capacity: 30, Type: "T"}}
	groups := []domain.Group{{ID: "G1", NumStudents: 30, Turn: domain.Morning}}
	demands := []domain.ClassDemand{
		{ID: "D1", CourseID: "C1", GroupID: "G1", DurationBlocks: 1, RequiredRoomType: "T"},
		{ID: "D2", CourseID: "C2", GroupID: "G1", DurationBlocks: 1, RequiredRoomType: "T"},
	}
	return NewModel(courses, profs, rooms, groups, demands, cfg)
}

func TestRunContextCancellationStopsEarly(t *testing.T) {
	m := neverConvergingModel(8, 1000, 1, 0.8, 0.2)
	driver := NewDriver(m, 3, nil)

	ctx, stop := context.WithCancel(context.Background())
	stop()

	result, err := driver.Run(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, StateCancelled, result.State)
}

func TestRunRejectsEmptyDemands(t *testing.T) {
	cfg := &domain.Configuration{
		Days:           []string{"MON"},
		TimeSlots:      []string{"08:00-08:45"},
		PopulationSize: 1,
		MaxGenerations: 1,
	}
	m := NewModel(nil, nil, nil, nil, nil, cfg)
	driver := NewDriver(m, 1, nil)

	_, err := driver.Run(context.Background(), nil)
	require.Error(t, err)
	var invariantErr *InvariantViolation
	require.ErrorAs(t, err, &invariantErr)
}

func TestRunRejectsMalformedConfiguration(t *testing.T) {
	m := multiDemandModel(2, 1, 5, 0.5, 0.5) // elitism exceeds population
	driver := NewDriver(m, 1, nil)

	_, err := driver.Run(context.Background(), nil)
	require.Error(t, err)
	var invariantErr *InvariantViolation
	require.ErrorAs(t, err, &invariantErr)
}

func TestRunRejectsZeroPopulationSize(t *testing.T) {
	m := multiDemandModel(0, 1, 0, 0.5, 0.5)
	driver := NewDriver(m, 1, nil)

	_, err := driver.Run(context.Background(), nil)
	require.Error(t, err)
	var invariantErr *InvariantViolation
	require.ErrorAs(t, err, &invariantErr)
}

func TestRunRejectsZeroMaxGenerations(t *testing.T) {
	m := multiDemandModel(2, 0, 0, 0.5, 0.5)
	driver := NewDriver(m, 1, nil)

	_, err := driver.Run(context.Background(), nil)
	require.Error(t, err)
	var invariantErr *InvariantViolation
	require.ErrorAs(t, err, &invariantErr)
}

func TestRunProgressCallbackCadence(t *testing.T) {
	m := multiDemandModel(6, 25, 1, 0.8, 0.2)

	var generationsSeen []int
	driver := NewDriver(m, 5, func(generation int, bestFitness float64) {
		generationsSeen = append(generationsSeen, generation)
	})

	_, err := driver.Run(context.Background(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, generationsSeen)
	require.Equal(t, 0, generationsSeen[0])
	for _, g := range generationsSeen {
		require.Zero(t, g%10)
	}
}
