package exporter

import (
	"encoding/json"
	"fmt"
	"os"

	"timetable-ga/internal/ga"
)

// Report is the JSON-serializable summary of one evolution run, grouped by
// day the way the teacher's original report grouped activities by day.
type Report struct {
	Fitness   float64       `json:"fitness"`
	Conflicts []string      `json:"conflicts"`
	Summary   ReportSummary `json:"summary"`
	Days      []DayReport   `json:"days"`
}

// ReportSummary aggregates counts across the whole run.
type ReportSummary struct {
	TotalDemands   int `json:"total_demands"`
	TotalCourses   int `json:"total_courses"`
	TotalRooms     int `json:"total_rooms"`
	TotalConflicts int `json:"total_conflicts"`
}

// DayReport is one day's entries.
type DayReport struct {
	Day     string        `json:"day"`
	Entries []EntryReport `json:"entries"`
}

// EntryReport is one scheduled class.
type EntryReport struct {
	Course    string `json:"course"`
	Group     string `json:"group"`
	Room      string `json:"room"`
	Professor string `json:"professor"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// BuildReport assembles a Report from an evaluated Chromosome.
func BuildReport(c *ga.Chromosome, m *ga.Model, evaluator *ga.Evaluator) *Report {
	rows := buildRows(c, m)

	courses := make(map[string]struct{})
	rooms := make(map[string]struct{})
	byDay := make(map[string][]EntryReport)
	var dayOrder []string
	seenDay := make(map[string]struct{})

	for _, r := range rows {
		courses[r.CourseName] = struct{}{}
		rooms[r.RoomName] = struct{}{}
		if _, ok := seenDay[r.DayName]; !ok {
			seenDay[r.DayName] = struct{}{}
			dayOrder = append(dayOrder, r.DayName)
		}
		byDay[r.DayName] = append(byDay[r.DayName], EntryReport{
			Course:    r.CourseName,
			Group:     r.GroupID,
			Room:      r.RoomName,
			Professor: r.ProfessorName,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}

	days := make([]DayReport, 0, len(dayOrder))
	for _, d := range dayOrder {
		days = append(days, DayReport{Day: d, Entries: byDay[d]})
	}

	conflicts := evaluator.Conflicts(c)

	return &Report{
		Fitness:   c.Fitness,
		Conflicts: conflicts,
		Summary: ReportSummary{
			TotalDemands:   len(m.Demands),
			TotalCourses:   len(courses),
			TotalRooms:     len(rooms),
			TotalConflicts: len(conflicts),
		},
		Days: days,
	}
}

// WriteJSON marshals r to path as indented JSON.
func WriteJSON(path string, r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("exporter: marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("exporter: writing %s: %w", path, err)
	}
	return nil
}
