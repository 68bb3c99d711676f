package domain

// ReportMode selects which prompt-assembly algorithm and required inputs apply.
type ReportMode string

const (
	ModeDaily   ReportMode = "daily"
	ModeWeekly  ReportMode = "weekly"
	ModeMeeting ReportMode = "meeting"
)

// ValidModes is the canonical set of accepted mode strings.
var ValidModes = map[string]bool{
	"daily": true, "weekly": true, "meeting": true,
}

// TaskEntry is one task label with its toggled status.
type TaskEntry struct {
	Label  string     `json:"label"`
	Status TaskStatus `json:"status"`
}

// GroupSelection is an ordered list of task entries under one task group.
type GroupSelection struct {
	Name  string      `json:"name"`
	Tasks []TaskEntry `json:"tasks"`
}

// ClientSelection is the ordered set of group selections for one client.
type ClientSelection struct {
	Name   string           `json:"name"`
	Groups []GroupSelection `json:"groups"`
}

// GenerationParams is an immutable snapshot of everything a single
// generation request needs. It is constructed fresh at submit time and
// never mutated afterwards, so an in-flight request is unaffected by
// later edits to the live selection store.
type GenerationParams struct {
	Mode ReportMode `json:"mode"`
	Date string     `json:"date,omitempty"`

	// Daily
	ProjectSelections  []ClientSelection `json:"projectSelections,omitempty"`
	InternalSelections []TaskEntry       `json:"internalSelections,omitempty"`
	ManualInput        string            `json:"manualInput,omitempty"`

	// Weekly
	WeeklyInput string `json:"weeklyInput,omitempty"`

	// Meeting
	MeetingAudio     []byte `json:"meetingAudio,omitempty"`
	MeetingAudioMIME string `json:"meetingAudioMime,omitempty"`
	MeetingContext   string `json:"meetingContext,omitempty"`
}

// HasActiveProjectTask reports whether any project task is doing or done.
func (p GenerationParams) HasActiveProjectTask() bool {
	for _, client := range p.ProjectSelections {
		for _, group := range client.Groups {
			for _, task := range group.Tasks {
				if task.Status.Active() {
					return true
				}
			}
		}
	}
	return false
}

// HasActiveInternalTask reports whether any internal task is doing or done.
func (p GenerationParams) HasActiveInternalTask() bool {
	for _, task := range p.InternalSelections {
		if task.Status.Active() {
			return true
		}
	}
	return false
}
