package services

// State is the wallet session's position in the login flow.
type State int

const (
	StateDisconnected State = iota
	StateModalOpen
	StateConnectedUnverified
	StateConnectedVerified
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateModalOpen:
		return "modal-open"
	case StateConnectedUnverified:
		return "connected-unverified"
	case StateConnectedVerified:
		return "connected-verified"
	default:
		return "unknown"
	}
}
