package booking

type HoldStatus string

const (
	HoldStatusActive   HoldStatus = "ACTIVE"
	HoldStatusExpired  HoldStatus = "EXPIRED"
	HoldStatusConsumed HoldStatus = "CONSUMED"
	HoldStatusReleased HoldStatus = "RELEASED"
)

func (s HoldStatus) String() string {
	return string(s)
}

func (s HoldStatus) IsValid() bool {
	switch s {
	case HoldStatusActive, HoldStatusExpired, HoldStatusConsumed, HoldStatusReleased:
		return true
	default:
		return false
	}
}

func (s HoldStatus) IsTerminal() bool {
	return s != HoldStatusActive
}

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	return st, st.IsValid()
}

// AllocationKind tells whether an occupied interval is held or booked.
type AllocationKind string

const (
	AllocationHold    AllocationKind = "HOLD"
	AllocationBooking AllocationKind = "BOOKING"
)

func (k AllocationKind) String() string {
	return string(k)
}
