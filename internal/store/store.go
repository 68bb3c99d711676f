// Package store holds the session-scoped selection state: task statuses
// toggled in the UI plus the free-text inputs for each report mode.
//
// The store is an explicit keyed structure (client → group → task) with
// insertion-ordered levels rather than nested maps, so prompt assembly
// iterates deterministically and snapshots never alias live state. It is
// confined to a single owner (the TUI update loop serializes access) and
// deliberately carries no locking; see DESIGN.md.
package store

import "briefgen/internal/domain"

// SelectionStore holds the current task statuses and free-text inputs
// for the active session. The zero value is ready to use.
type SelectionStore struct {
	projects []domain.ClientSelection
	internal []domain.TaskEntry

	manualText     string
	weeklyText     string
	meetingContext string
}

// New returns an empty SelectionStore.
func New() *SelectionStore {
	return &SelectionStore{}
}

// SetProjectStatus sets or overwrites the status at the
// (client, group, task) path, creating intermediate levels as needed.
// Sibling entries are untouched.
func (s *SelectionStore) SetProjectStatus(client, group, task string, status domain.TaskStatus) {
	c := s.findOrAddClient(client)
	g := findOrAddGroup(c, group)
	for i := range g.Tasks {
		if g.Tasks[i].Label == task {
			g.Tasks[i].Status = status
			return
		}
	}
	g.Tasks = append(g.Tasks, domain.TaskEntry{Label: task, Status: status})
}

// ProjectStatus returns the stored status for the path, or pending when
// the path does not exist.
func (s *SelectionStore) ProjectStatus(client, group, task string) domain.TaskStatus {
	for i := range s.projects {
		if s.projects[i].Name != client {
			continue
		}
		for j := range s.projects[i].Groups {
			if s.projects[i].Groups[j].Name != group {
				continue
			}
			for _, t := range s.projects[i].Groups[j].Tasks {
				if t.Label == task {
					return t.Status
				}
			}
		}
	}
	return domain.StatusPending
}

// SetInternalStatus sets or overwrites the status for one internal task.
func (s *SelectionStore) SetInternalStatus(task string, status domain.TaskStatus) {
	for i := range s.internal {
		if s.internal[i].Label == task {
			s.internal[i].Status = status
			return
		}
	}
	s.internal = append(s.internal, domain.TaskEntry{Label: task, Status: status})
}

// InternalStatus returns the stored status for an internal task, or
// pending when absent.
func (s *SelectionStore) InternalStatus(task string) domain.TaskStatus {
	for _, t := range s.internal {
		if t.Label == task {
			return t.Status
		}
	}
	return domain.StatusPending
}

// SetManualText overwrites the daily manual-notes field verbatim.
func (s *SelectionStore) SetManualText(text string) { s.manualText = text }

// SetWeeklyText overwrites the weekly raw-input field verbatim.
func (s *SelectionStore) SetWeeklyText(text string) { s.weeklyText = text }

// SetMeetingContext overwrites the meeting background field verbatim.
func (s *SelectionStore) SetMeetingContext(text string) { s.meetingContext = text }

// ManualText returns the daily manual-notes field.
func (s *SelectionStore) ManualText() string { return s.manualText }

// WeeklyText returns the weekly raw-input field.
func (s *SelectionStore) WeeklyText() string { return s.weeklyText }

// MeetingContext returns the meeting background field.
func (s *SelectionStore) MeetingContext() string { return s.meetingContext }

// Reset discards all selections and text fields.
func (s *SelectionStore) Reset() {
	*s = SelectionStore{}
}

// Snapshot returns a deep copy of the project and internal selections.
// Mutating the store after a snapshot never affects the copy, so an
// in-flight generation request sees exactly the state at submit time.
func (s *SelectionStore) Snapshot() ([]domain.ClientSelection, []domain.TaskEntry) {
	projects := make([]domain.ClientSelection, len(s.projects))
	for i, c := range s.projects {
		groups := make([]domain.GroupSelection, len(c.Groups))
		for j, g := range c.Groups {
			tasks := make([]domain.TaskEntry, len(g.Tasks))
			copy(tasks, g.Tasks)
			groups[j] = domain.GroupSelection{Name: g.Name, Tasks: tasks}
		}
		projects[i] = domain.ClientSelection{Name: c.Name, Groups: groups}
	}

	internal := make([]domain.TaskEntry, len(s.internal))
	copy(internal, s.internal)
	return projects, internal
}

func (s *SelectionStore) findOrAddClient(name string) *domain.ClientSelection {
	for i := range s.projects {
		if s.projects[i].Name == name {
			return &s.projects[i]
		}
	}
	s.projects = append(s.projects, domain.ClientSelection{Name: name})
	return &s.projects[len(s.projects)-1]
}

func findOrAddGroup(c *domain.ClientSelection, name string) *domain.GroupSelection {
	for i := range c.Groups {
		if c.Groups[i].Name == name {
			return &c.Groups[i]
		}
	}
	c.Groups = append(c.Groups, domain.GroupSelection{Name: name})
	return &c.Groups[len(c.Groups)-1]
}
