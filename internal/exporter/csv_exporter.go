// Package exporter renders a Chromosome as a CSV timetable, a grouped JSON
// report, and a plain-text conflict listing.
package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"

	"timetable-ga/internal/domain"
	"timetable-ga/internal/ga"
)

var csvHeader = []string{"Day", "Start Time", "End Time", "Course", "Group", "Room", "Professor", "Room Type"}

// WriteCSV renders c as a CSV timetable sorted by (day, start slot, group),
// matching the row ordering and column set of the original tool's
// horario_generado.csv.
func WriteCSV(path string, c *ga.Chromosome, m *ga.Model) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("exporter: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("exporter: writing header: %w", err)
	}

	rows := buildRows(c, m)
	for _, row := range rows {
		record := []string{
			row.DayName, row.StartTime, row.EndTime,
			row.CourseName, row.GroupID, row.RoomName, row.ProfessorName, row.RoomType,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("exporter: writing row: %w", err)
		}
	}
	return nil
}

// row is one rendered timetable entry.
type row struct {
	DayIdx        int
	StartSlotIdx  int
	GroupID       string
	DayName       string
	StartTime     string
	EndTime       string
	CourseName    string
	RoomName      string
	ProfessorName string
	RoomType      string
}

func buildRows(c *ga.Chromosome, m *ga.Model) []row {
	rows := make([]row, 0, len(c.Genes))
	for i := range m.Demands {
		demand := &m.Demands[i]
		gene := c.Genes[i]

		course := m.Courses[demand.CourseID]
		group := m.Groups[demand.GroupID]
		room := m.Rooms[gene.RoomID]
		prof := m.Professors[gene.ProfessorID]

		r := row{
			DayIdx:       gene.DayIdx,
			StartSlotIdx: gene.StartSlotIdx,
			GroupID:      demand.GroupID,
			CourseName:   demand.CourseID,
			RoomName:     gene.RoomID,
			ProfessorName: gene.ProfessorID,
			RoomType:     string(demand.RequiredRoomType),
		}
		if course != nil {
			r.CourseName = course.Name
		}
		if group != nil {
			r.GroupID = group.ID
		}
		if room != nil {
			r.RoomName = room.Name
			r.RoomType = string(room.Type)
		}
		if prof != nil {
			r.ProfessorName = prof.Name
		}
		if gene.DayIdx >= 0 && gene.DayIdx < len(m.Config.Days) {
			r.DayName = m.Config.Days[gene.DayIdx]
		} else {
			r.DayName = domain.OutOfBoundsMarker
		}
		r.StartTime, r.EndTime = m.Config.RenderAssignmentTimes(gene.StartSlotIdx, gene.NumSlots)

		rows = append(rows, r)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DayIdx != rows[j].DayIdx {
			return rows[i].DayIdx < rows[j].DayIdx
		}
		if rows[i].StartSlotIdx != rows[j].StartSlotIdx {
			return rows[i].StartSlotIdx < rows[j].StartSlotIdx
		}
		return rows[i].GroupID < rows[j].GroupID
	})
	return rows
}
