package entities

// ApplicationStatus is the lifecycle label of a public submission. Any status
// may be set from any other; there is no transition order.
type ApplicationStatus string

const (
	StatusSubmitted  ApplicationStatus = "submitted"
	StatusRegistered ApplicationStatus = "registered"
	StatusAccepted   ApplicationStatus = "accepted"
	StatusRejected   ApplicationStatus = "rejected"
)

// ReviewStatuses are valid for recruitment and brain-games submissions
var ReviewStatuses = []ApplicationStatus{StatusSubmitted, StatusAccepted, StatusRejected}

// NewEventStatuses are valid for new-event registrations
var NewEventStatuses = []ApplicationStatus{StatusRegistered, StatusAccepted, StatusRejected}

// IsReviewStatus reports whether s is a valid recruitment/brain-games status
func IsReviewStatus(s ApplicationStatus) bool {
	return containsStatus(ReviewStatuses, s)
}

// IsNewEventStatus reports whether s is a valid new-event status
func IsNewEventStatus(s ApplicationStatus) bool {
	return containsStatus(NewEventStatuses, s)
}

// IsDecision reports whether s is a final decision that triggers a notification
func (s ApplicationStatus) IsDecision() bool {
	return s == StatusAccepted || s == StatusRejected
}

func containsStatus(list []ApplicationStatus, s ApplicationStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// StatusCounts maps a label (status, team, role) to its record count
type StatusCounts map[string]int64

// StatusSummary is a total plus a per-status breakdown
type StatusSummary struct {
	Total    int64        `json:"total"`
	ByStatus StatusCounts `json:"byStatus"`
}

// UpdateStatusInput is the body of a status PATCH
type UpdateStatusInput struct {
	Status ApplicationStatus `json:"status" binding:"required"`
}
