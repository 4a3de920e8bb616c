package eligibility

import (
	"testing"

	"timetable-ga/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestBuildBucketsByTypeAndCourse(t *testing.T) {
	courses := []domain.Course{
		{ID: "C1", EligibleProfessorIDs: []string{"P1", "P2"}},
		{ID: "C2"},
	}
	rooms := []domain.Room{
		{ID: "R1", Type: "LAB"},
		{ID: "R2", Type: "CLASSROOM"},
		{ID: "R3", Type: "LAB"},
	}
	idx := Build(courses, rooms)
	idx.SetAllProfessorIDs([]string{"P1", "P2", "P3"})

	require.Equal(t, []string{"P1", "P2"}, idx.ProfessorsFor("C1"))
	require.Empty(t, idx.ProfessorsFor("C2"))
	require.ElementsMatch(t, []string{"R1", "R3"}, idx.RoomsFor("LAB"))
	require.Equal(t, "P1", idx.FallbackProfessor())
	require.Equal(t, "R1", idx.FallbackRoom())
}

func TestFallbacksEmptyWhenNoData(t *testing.T) {
	idx := Build(nil, nil)
	require.Equal(t, "", idx.FallbackProfessor())
	require.Equal(t, "", idx.FallbackRoom())
}
