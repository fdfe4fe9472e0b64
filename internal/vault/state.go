package vault

// State is the lock state of the device vault.
type State int

const (
	// StateUninitialized means no passcode has been set up on this device.
	StateUninitialized State = iota
	// StateAwaitingConfirmation follows Setup until the user acknowledges the
	// recovery key.
	StateAwaitingConfirmation
	StateUnlocked
	StateLocked
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "UNINITIALIZED"
	case StateAwaitingConfirmation:
		return "AWAITING_CONFIRMATION"
	case StateUnlocked:
		return "UNLOCKED"
	case StateLocked:
		return "LOCKED"
	default:
		return "UNKNOWN"
	}
}
