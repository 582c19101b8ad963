package models

// Status is the application pipeline state of a job.
//
// Transitions are deliberately unconstrained: any status may move to any
// other status, since users correct mistakes by hand. The only mechanized
// rule lives in JobService.UpdateStatus, which stamps or clears applied_date.
type Status string

const (
	StatusWishlist  Status = "wishlist"
	StatusApplied   Status = "applied"
	StatusScreening Status = "screening"
	StatusInterview Status = "interview"
	StatusTechnical Status = "technical"
	StatusFinal     Status = "final"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
	StatusArchived  Status = "archived"
)

var statusLabels = map[Status]string{
	StatusWishlist:  "Interesse",
	StatusApplied:   "Aplicado",
	StatusScreening: "Triagem",
	StatusInterview: "Entrevista",
	StatusTechnical: "Técnica",
	StatusFinal:     "Final",
	StatusOffer:     "Oferta",
	StatusRejected:  "Rejeitado",
	StatusWithdrawn: "Retirado",
	StatusArchived:  "Arquivado",
}

// Badge classes kept in sync with the dashboard frontend.
var statusColors = map[Status]string{
	StatusWishlist:  "bg-gray-100 text-gray-800",
	StatusApplied:   "bg-blue-100 text-blue-800",
	StatusScreening: "bg-yellow-100 text-yellow-800",
	StatusInterview: "bg-purple-100 text-purple-800",
	StatusTechnical: "bg-orange-100 text-orange-800",
	StatusFinal:     "bg-indigo-100 text-indigo-800",
	StatusOffer:     "bg-green-100 text-green-800",
	StatusRejected:  "bg-red-100 text-red-800",
	StatusWithdrawn: "bg-gray-100 text-gray-800",
	StatusArchived:  "bg-gray-100 text-gray-600",
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s Status) Label() string {
	return statusLabels[s]
}

func (s Status) Color() string {
	return statusColors[s]
}

// IsActive reports whether the status counts as an in-flight application
// for dashboard purposes.
func (s Status) IsActive() bool {
	return s == StatusApplied || s == StatusScreening || s == StatusInterview
}

// Work type values for Job.WorkType.
const (
	WorkTypeRemote = "remote"
	WorkTypeHybrid = "hybrid"
	WorkTypeOnsite = "onsite"
)

// Employment type values for Job.EmploymentType.
const (
	EmploymentFullTime  = "full-time"
	EmploymentPartTime  = "part-time"
	EmploymentContract  = "contract"
	EmploymentFreelance = "freelance"
)

// PriorityColors maps the 1-5 priority scale to its badge class.
var PriorityColors = map[int]string{
	1: "bg-gray-100 text-gray-600",
	2: "bg-blue-100 text-blue-600",
	3: "bg-yellow-100 text-yellow-600",
	4: "bg-orange-100 text-orange-600",
	5: "bg-red-100 text-red-600",
}
