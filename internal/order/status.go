package order

// Status is the fulfilment state of an order.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusPaid       Status = "PAID"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the admin update may move s to newStatus.
// Terminal states are frozen and cancellation is reachable from any
// non-terminal state. Transitions between non-terminal states are otherwise
// unrestricted: the back office corrects mis-set statuses in both directions.
func (s Status) CanTransitionTo(newStatus Status) bool {
	if !s.IsValid() || !newStatus.IsValid() {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if newStatus == s {
		return false
	}
	return true
}
