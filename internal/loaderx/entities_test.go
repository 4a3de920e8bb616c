package loaderx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCoursesValid(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "courses.json", `[{"id":"C1","name":"Algorithms","weekly_hours":4}]`)

	courses, err := LoadCourses(path)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "C1", courses[0].ID)
}

func TestLoadCoursesRejectsMissingRequiredField(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "courses.json", `[{"name":"Algorithms"}]`)

	_, err := LoadCourses(path)
	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestLoadDatasetStopsAtFirstError(t *testing.T) {
	dir := t.TempDir()
	paths := DatasetPaths{
		Courses:    writeTemp(t, dir, "courses.json", `[{"id":"C1","name":"Algorithms"}]`),
		Professors: filepath.Join(dir, "missing-professors.json"),
		Rooms:      writeTemp(t, dir, "rooms.json", `[]`),
		Groups:     writeTemp(t, dir, "groups.json", `[]`),
		Demands:    writeTemp(t, dir, "demands.json", `[]`),
	}

	_, err := LoadDataset(paths)
	require.Error(t, err)
}

func TestLoadConfigurationValid(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "config.yaml", `
days: ["MON", "TUE"]
time_slots: ["08:00-08:45", "08:45-09:30"]
break_slot_indices: []
population_size: 20
max_generations: 100
elitism_count: 2
crossover_rate: 0.8
mutation_rate: 0.1
seed: 42
`)

	cfg, err := LoadConfiguration(path)
	require.NoError(t, err)
	require.Equal(t, 20, cfg.PopulationSize)
	require.Equal(t, int64(42), cfg.Seed)
}

func TestLoadConfigurationRejectsBadElitism(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "config.yaml", `
days: ["MON"]
time_slots: ["08:00-08:45"]
population_size: 1
max_generations: 1
elitism_count: 5
crossover_rate: 0.5
mutation_rate: 0.5
seed: 1
`)

	_, err := LoadConfiguration(path)
	require.Error(t, err)
}
