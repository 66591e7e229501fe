package project

// Project is a project assignment as the backend reports it.
type Project struct {
	ID          string   `json:"_id"`
	Name        string   `json:"projectName"`
	Status      string   `json:"projectStatus"`
	Deadline    string   `json:"projectDeadline,omitempty"`
	TeamMembers []string `json:"teamMembers,omitempty"`
}

// Ticket is a work item raised against a project.
type Ticket struct {
	ID         string `json:"_id"`
	Title      string `json:"ticketTitle"`
	ProjectID  string `json:"project"`
	AssignedTo string `json:"assignedTo,omitempty"`
	Priority   string `json:"priority,omitempty"`
	Status     string `json:"status"`
}

// Ticket statuses used by the backend.
const (
	TicketOpen       = "Open"
	TicketInProgress = "In Progress"
	TicketClosed     = "Closed"
)
