package loaderx

import (
	"encoding/json"
	"fmt"
	"os"

	"timetable-ga/internal/domain"
)

// ValidationError aggregates every struct-tag validation problem found while
// loading one entity population, so a caller can fix everything in one pass
// instead of one error at a time. References between populations (a
// demand's course or group id, for example) are not checked.
type ValidationError struct {
	Errors []string
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("loaderx: %d validation error(s):\n- %s", len(v.Errors), joinLines(v.Errors))
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n- "
		}
		out += l
	}
	return out
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loaderx: reading %s: %w", path, err)
	}
	var result []T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("loaderx: parsing %s: %w", path, err)
	}
	return result, nil
}

func validateAll[T any](path string, items []T) error {
	var errs []string
	for i := range items {
		if err := validate.Struct(&items[i]); err != nil {
			errs = append(errs, fmt.Sprintf("%s[%d]: %v", path, i, err))
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// LoadCourses reads a JSON array of Course from path.
func LoadCourses(path string) ([]domain.Course, error) {
	items, err := loadJSON[domain.Course](path)
	if err != nil {
		return nil, err
	}
	if err := validateAll(path, items); err != nil {
		return nil, err
	}
	for i := range items {
		seen := make(map[string]struct{}, len(items[i].EligibleProfessorIDs))
		ids := items[i].EligibleProfessorIDs[:0]
		for _, id := range items[i].EligibleProfessorIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
		items[i].EligibleProfessorIDs = ids
	}
	return items, nil
}

// LoadProfessors reads a JSON array of Professor from path.
func LoadProfessors(path string) ([]domain.Professor, error) {
	items, err := loadJSON[domain.Professor](path)
	if err != nil {
		return nil, err
	}
	if err := validateAll(path, items); err != nil {
		return nil, err
	}
	return items, nil
}

// LoadRooms reads a JSON array of Room from path.
func LoadRooms(path string) ([]domain.Room, error) {
	items, err := loadJSON[domain.Room](path)
	if err != nil {
		return nil, err
	}
	if err := validateAll(path, items); err != nil {
		return nil, err
	}
	return items, nil
}

// LoadGroups reads a JSON array of Group from path.
func LoadGroups(path string) ([]domain.Group, error) {
	items, err := loadJSON[domain.Group](path)
	if err != nil {
		return nil, err
	}
	if err := validateAll(path, items); err != nil {
		return nil, err
	}
	return items, nil
}

// LoadClassDemands reads a JSON array of ClassDemand from path.
func LoadClassDemands(path string) ([]domain.ClassDemand, error) {
	items, err := loadJSON[domain.ClassDemand](path)
	if err != nil {
		return nil, err
	}
	if err := validateAll(path, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Dataset bundles every input file a run needs.
type Dataset struct {
	Courses    []domain.Course
	Professors []domain.Professor
	Rooms      []domain.Room
	Groups     []domain.Group
	Demands    []domain.ClassDemand
}

// DatasetPaths names the JSON file backing each entity population.
type DatasetPaths struct {
	Courses    string
	Professors string
	Rooms      string
	Groups     string
	Demands    string
}

// LoadDataset loads every entity population named by paths. It stops at the
// first error — unlike per-population validation, cross-file loading
// failures are not aggregated, since a missing file usually means the
// whole run is misconfigured.
func LoadDataset(paths DatasetPaths) (*Dataset, error) {
	courses, err := LoadCourses(paths.Courses)
	if err != nil {
		return nil, err
	}
	professors, err := LoadProfessors(paths.Professors)
	if err != nil {
		return nil, err
	}
	rooms, err := LoadRooms(paths.Rooms)
	if err != nil {
		return nil, err
	}
	groups, err := LoadGroups(paths.Groups)
	if err != nil {
		return nil, err
	}
	demands, err := LoadClassDemands(paths.Demands)
	if err != nil {
		return nil, err
	}
	return &Dataset{
		Courses:    courses,
		Professors: professors,
		Rooms:      rooms,
		Groups:     groups,
		Demands:    demands,
	}, nil
}
