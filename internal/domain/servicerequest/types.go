package servicerequest

type Status string

const (
	StatusPending             Status = "pending"
	StatusResponded           Status = "responded"
	StatusRescheduleRequested Status = "reschedule_requested"
	StatusConfirmed           Status = "confirmed"
	StatusCancelled           Status = "cancelled"
	StatusRefunded            Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusResponded, StatusRescheduleRequested,
		StatusConfirmed, StatusCancelled, StatusRefunded:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// AcceptsTimeOptions reports whether the salon may (re)offer slots.
func (s Status) AcceptsTimeOptions() bool {
	switch s {
	case StatusPending, StatusResponded, StatusRescheduleRequested:
		return true
	default:
		return false
	}
}
