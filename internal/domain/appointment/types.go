package appointment

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled
}

// CanTransitionTo encodes the lifecycle state machine.
// A no-op transition to the same status is not allowed.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}

type PriceMode string

const (
	PriceModeStandard PriceMode = "standard"
	PriceModeCustom   PriceMode = "custom"
)

func (m PriceMode) String() string {
	return string(m)
}

func (m PriceMode) IsValid() bool {
	switch m {
	case PriceModeStandard, PriceModeCustom:
		return true
	default:
		return false
	}
}

type ClientKind string

const (
	ClientKindRegistered ClientKind = "registered"
	ClientKindWalkIn     ClientKind = "walk_in"
)

func (k ClientKind) String() string {
	return string(k)
}
