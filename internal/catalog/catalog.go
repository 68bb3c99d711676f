package catalog

// TaskGroup is a named, immutable collection of task labels. The same
// group template applies to every client.
type TaskGroup struct {
	Name  string
	Tasks []string
}

// Clients is the fixed roster of client accounts the manager reports on.
var Clients = []string{
	"Suining Middle School",
	"Fujiang Middle School",
	"Chengdu Experimental Primary",
	"Mianyang No.1 High School",
}

// GroupTemplate is the per-client task catalog, applied uniformly to
// every client in Clients.
var GroupTemplate = []TaskGroup{
	{
		Name: "Program Design",
		Tasks: []string{
			"Draft study-tour itinerary",
			"Revise program proposal",
			"Prepare course materials",
			"Confirm safety plan",
		},
	},
	{
		Name: "Contract & Finance",
		Tasks: []string{
			"Contract signed",
			"Invoice issued",
			"Payment collected",
			"Project settlement closed",
		},
	},
	{
		Name: "On-site Execution",
		Tasks: []string{
			"Coordinate venue and transport",
			"Brief tour guides and instructors",
			"Run on-site activity",
			"Collect feedback forms",
		},
	},
	{
		Name: "Client Liaison",
		Tasks: []string{
			"Schedule follow-up meeting",
			"Send progress update",
			"Resolve client concern",
		},
	},
}

// InternalTasks is the flat catalog of internal and administrative tasks.
var InternalTasks = []string{
	"Weekly team sync",
	"Expense reimbursement",
	"Materials inventory check",
	"Update project tracker",
	"New staff onboarding support",
	"Cross-department coordination",
}

// FindGroup returns the template group with the given name, if any.
func FindGroup(name string) (TaskGroup, bool) {
	for _, g := range GroupTemplate {
		if g.Name == name {
			return g, true
		}
	}
	return TaskGroup{}, false
}
