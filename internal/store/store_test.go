package store

import (
	"testing"

	"briefgen/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionStore_AbsentPathIsPending(t *testing.T) {
	s := New()
	assert.Equal(t, domain.StatusPending, s.ProjectStatus("ClientA", "Sales", "Contract signed"))
	assert.Equal(t, domain.StatusPending, s.InternalStatus("Weekly team sync"))
}

func TestSelectionStore_SetProjectStatus_CreatesIntermediateLevels(t *testing.T) {
	s := New()
	s.SetProjectStatus("ClientA", "Sales", "Contract signed", domain.StatusDone)
	assert.Equal(t, domain.StatusDone, s.ProjectStatus("ClientA", "Sales", "Contract signed"))

	// Sibling entries are unaffected.
	assert.Equal(t, domain.StatusPending, s.ProjectStatus("ClientA", "Sales", "Invoice issued"))
	assert.Equal(t, domain.StatusPending, s.ProjectStatus("ClientB", "Sales", "Contract signed"))
}

func TestSelectionStore_SetProjectStatus_Overwrites(t *testing.T) {
	s := New()
	s.SetProjectStatus("ClientA", "Sales", "Contract signed", domain.StatusDoing)
	s.SetProjectStatus("ClientA", "Sales", "Contract signed", domain.StatusDone)
	assert.Equal(t, domain.StatusDone, s.ProjectStatus("ClientA", "Sales", "Contract signed"))

	projects, _ := s.Snapshot()
	require.Len(t, projects, 1)
	require.Len(t, projects[0].Groups, 1)
	assert.Len(t, projects[0].Groups[0].Tasks, 1)
}

func TestSelectionStore_PreservesInsertionOrder(t *testing.T) {
	s := New()
	s.SetProjectStatus("B", "G1", "t1", domain.StatusDoing)
	s.SetProjectStatus("A", "G1", "t1", domain.StatusDone)
	s.SetProjectStatus("B", "G2", "t2", domain.StatusDone)

	projects, _ := s.Snapshot()
	require.Len(t, projects, 2)
	assert.Equal(t, "B", projects[0].Name)
	assert.Equal(t, "A", projects[1].Name)
	require.Len(t, projects[0].Groups, 2)
	assert.Equal(t, "G1", projects[0].Groups[0].Name)
	assert.Equal(t, "G2", projects[0].Groups[1].Name)
}

func TestSelectionStore_SnapshotIsDetached(t *testing.T) {
	s := New()
	s.SetProjectStatus("ClientA", "Sales", "Contract signed", domain.StatusDoing)
	s.SetInternalStatus("Weekly team sync", domain.StatusDoing)

	projects, internal := s.Snapshot()

	s.SetProjectStatus("ClientA", "Sales", "Contract signed", domain.StatusDone)
	s.SetInternalStatus("Weekly team sync", domain.StatusDone)

	assert.Equal(t, domain.StatusDoing, projects[0].Groups[0].Tasks[0].Status)
	assert.Equal(t, domain.StatusDoing, internal[0].Status)
}

func TestSelectionStore_TextFieldsStoredVerbatim(t *testing.T) {
	s := New()
	s.SetManualText("  raw note  ")
	s.SetWeeklyText("\nmonday: did things\n")
	s.SetMeetingContext("marketing weekly, attendees: Mr. Hu")

	assert.Equal(t, "  raw note  ", s.ManualText())
	assert.Equal(t, "\nmonday: did things\n", s.WeeklyText())
	assert.Equal(t, "marketing weekly, attendees: Mr. Hu", s.MeetingContext())
}

func TestSelectionStore_Reset(t *testing.T) {
	s := New()
	s.SetProjectStatus("ClientA", "Sales", "Contract signed", domain.StatusDone)
	s.SetWeeklyText("notes")
	s.Reset()

	projects, internal := s.Snapshot()
	assert.Empty(t, projects)
	assert.Empty(t, internal)
	assert.Empty(t, s.WeeklyText())
}
