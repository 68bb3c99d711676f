package domain

// TaskStatus is the selection state of a single task for the current day.
// Pending is the zero state; absence of an entry is equivalent to Pending.
type TaskStatus string

const (
	StatusPending TaskStatus = "pending"
	StatusDoing   TaskStatus = "doing"
	StatusDone    TaskStatus = "done"
)

// Next returns the status that follows in the toggle cycle
// pending → doing → done → pending. Toggling is the only transition
// mechanism; nothing advances a status internally.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case StatusPending:
		return StatusDoing
	case StatusDoing:
		return StatusDone
	default:
		return StatusPending
	}
}

// Active reports whether the status contributes content to a report.
func (s TaskStatus) Active() bool {
	return s == StatusDoing || s == StatusDone
}

// Label returns the phrase used for the status inside report prompts.
func (s TaskStatus) Label() string {
	switch s {
	case StatusDoing:
		return "in progress"
	case StatusDone:
		return "completed"
	default:
		return "not started"
	}
}

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = map[string]bool{
	"pending": true, "doing": true, "done": true,
}
