package salary

import "github.com/mdarwaz0786/ems-attendance-client/internal/pkg/api"

// Slip is one month's salary statement metadata. PDF rendering is the
// backend's concern; the client only fetches the figures.
type Slip struct {
	ID          string  `json:"_id"`
	EmployeeID  string  `json:"employee"`
	Month       string  `json:"month"`
	GrossSalary float64 `json:"grossSalary"`
	Deductions  float64 `json:"deductions"`
	NetSalary   float64 `json:"netSalary"`
	PresentDays int     `json:"presentDays"`
	AbsentDays  int     `json:"absentDays"`
	SlipURL     string  `json:"slipUrl,omitempty"`
	GeneratedOn string  `json:"generatedOn,omitempty"`
}

type SlipResponse struct {
	api.Envelope
	Salary []Slip `json:"salary"`
}
