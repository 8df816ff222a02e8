package models

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusAccepted ApplicationStatus = "Accepted"
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)

// IsTerminal reports whether no further transition is permitted.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// IsDecision reports whether s is a value the API may transition to. Pending is
// initial only; the API never transitions back to it.
func (s ApplicationStatus) IsDecision() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}
