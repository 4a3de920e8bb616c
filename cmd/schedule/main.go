// Command schedule loads a university's courses, professors, rooms, groups
// and class demands, runs the constraint-aware evolutionary scheduler
// against them, and writes the best timetable found as CSV and JSON.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"timetable-ga/internal/domain"
	"timetable-ga/internal/exporter"
	"timetable-ga/internal/ga"
	"timetable-ga/internal/loaderx"
	"timetable-ga/internal/logging"
	"timetable-ga/internal/metrics"
)

type runFlags struct {
	configPath     string
	coursesPath    string
	professorsPath string
	roomsPath      string
	groupsPath     string
	demandsPath    string
	outPrefix      string
	seed           int64
	populationSize int
	maxGenerations int
	debug          bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the constraint-aware evolutionary timetable scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "data/config.yaml", "path to the run configuration (YAML)")
	cmd.Flags().StringVar(&flags.coursesPath, "courses", "data/courses.json", "path to the courses JSON file")
	cmd.Flags().StringVar(&flags.professorsPath, "professors", "data/professors.json", "path to the professors JSON file")
	cmd.Flags().StringVar(&flags.roomsPath, "rooms", "data/rooms.json", "path to the rooms JSON file")
	cmd.Flags().StringVar(&flags.groupsPath, "groups", "data/groups.json", "path to the groups JSON file")
	cmd.Flags().StringVar(&flags.demandsPath, "demands", "data/demands.json", "path to the class demands JSON file")
	cmd.Flags().StringVar(&flags.outPrefix, "out", "horario_generado", "output file prefix for the CSV/JSON report")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed; 0 uses the configuration's seed, or a time-derived one when that is also 0")
	cmd.Flags().IntVar(&flags.populationSize, "population-size", 0, "override the configuration's population_size (0 = use configuration)")
	cmd.Flags().IntVar(&flags.maxGenerations, "max-generations", 0, "override the configuration's max_generations (0 = use configuration)")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "enable verbose development logging")

	return cmd
}

func runSchedule(parentCtx context.Context, flags *runFlags) error {
	logger, err := logging.New(flags.debug)
	if err != nil {
		return fmt.Errorf("schedule: building logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	logger.Info("loading configuration and entities")
	cfg, err := loaderx.LoadConfiguration(flags.configPath)
	if err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	if flags.populationSize > 0 {
		cfg.PopulationSize = flags.populationSize
	}
	if flags.maxGenerations > 0 {
		cfg.MaxGenerations = flags.maxGenerations
	}

	seed := flags.seed
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = rand.New(rand.NewSource(time.Now().UnixNano())).Int63()
	}
	cfg.Seed = seed

	dataset, err := loaderx.LoadDataset(loaderx.DatasetPaths{
		Courses:    flags.coursesPath,
		Professors: flags.professorsPath,
		Rooms:      flags.roomsPath,
		Groups:     flags.groupsPath,
		Demands:    flags.demandsPath,
	})
	if err != nil {
		return fmt.Errorf("schedule: %w", err)
	}

	logLoadSummary(logger, cfg, dataset)

	model := ga.NewModel(dataset.Courses, dataset.Professors, dataset.Rooms, dataset.Groups, dataset.Demands, cfg)

	collector := metrics.NewCollector(cfg.PopulationSize)
	driver := ga.NewDriver(model, cfg.Seed, collector.Observe)

	logger.Info("starting evolution", zap.Int("population_size", cfg.PopulationSize), zap.Int("max_generations", cfg.MaxGenerations), zap.Int64("seed", cfg.Seed))

	result, err := driver.Run(ctx, nil)
	if err != nil {
		return fmt.Errorf("schedule: evolution failed: %w", err)
	}

	switch result.State {
	case ga.StateCancelled:
		logger.Warn("evolution cancelled before completion", zap.Int("generations", result.Generations))
		return nil
	case ga.StateCompleted:
		logger.Info("evolution completed", zap.Int("generations", result.Generations), zap.Float64("best_fitness", result.Best.Fitness))
	}

	evaluator := ga.NewEvaluator(model)
	conflicts := evaluator.Conflicts(result.Best)

	if result.Best.Fitness == 0 {
		logger.Info("perfect schedule: no hard conflicts detected")
	} else {
		printConflictSummary(logger, conflicts)
	}

	csvPath := flags.outPrefix + ".csv"
	if err := exporter.WriteCSV(csvPath, result.Best, model); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}

	conflictsPath := flags.outPrefix + ".conflicts.txt"
	if err := os.WriteFile(conflictsPath, []byte(exporter.WriteConflictText(conflicts)), 0o644); err != nil {
		return fmt.Errorf("schedule: writing %s: %w", conflictsPath, err)
	}

	report := exporter.BuildReport(result.Best, model, evaluator)
	jsonPath := flags.outPrefix + ".json"
	if err := exporter.WriteJSON(jsonPath, report); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}

	metricsText, err := collector.DumpText()
	if err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	metricsPath := flags.outPrefix + ".metrics.prom"
	if err := os.WriteFile(metricsPath, []byte(metricsText), 0o644); err != nil {
		return fmt.Errorf("schedule: writing %s: %w", metricsPath, err)
	}

	logger.Info("wrote run artifacts",
		zap.String("csv", csvPath),
		zap.String("json", jsonPath),
		zap.String("conflicts", conflictsPath),
		zap.String("metrics", metricsPath),
	)
	return nil
}

// logLoadSummary reproduces the original tool's pre-evolution load summary
// (counts of each loaded entity population plus the configured
// population/generation sizes) as a structured log line.
func logLoadSummary(logger *zap.Logger, cfg *domain.Configuration, dataset *loaderx.Dataset) {
	logger.Info("data loaded",
		zap.Int("courses", len(dataset.Courses)),
		zap.Int("professors", len(dataset.Professors)),
		zap.Int("rooms", len(dataset.Rooms)),
		zap.Int("groups", len(dataset.Groups)),
		zap.Int("demands", len(dataset.Demands)),
		zap.Int("population_size", cfg.PopulationSize),
		zap.Int("max_generations", cfg.MaxGenerations),
	)
}

func printConflictSummary(logger *zap.Logger, conflicts []string) {
	logger.Warn("hard conflicts detected", zap.Int("count", len(conflicts)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tConflict")
	fmt.Fprintln(w, "-\t--------")
	limit := len(conflicts)
	if limit > 20 {
		limit = 20
	}
	for i := 0; i < limit; i++ {
		fmt.Fprintf(w, "%d\t%s\n", i+1, conflicts[i])
	}
	w.Flush()
	if len(conflicts) > 20 {
		fmt.Printf("  ... and %d more.\n", len(conflicts)-20)
	}
}
