package editor

import "errors"

var (
	ErrRemovalPending   = errors.New("another removal is awaiting confirmation")
	ErrNoPendingRemoval = errors.New("no removal awaiting confirmation")
)

type RemovalState string

const (
	RemovalIdle           RemovalState = "idle"
	RemovalPendingConfirm RemovalState = "pending_confirm"
)

// RemovalFlow is the one confirmation step shared by the card stepper and the
// editor's remove button: Idle -> PendingConfirm -> Idle.
type RemovalFlow struct {
	state  RemovalState
	itemID string
}

func (f *RemovalFlow) State() RemovalState {
	if f.state == "" {
		return RemovalIdle
	}
	return f.state
}

// Pending returns the item awaiting confirmation.
func (f *RemovalFlow) Pending() (string, bool) {
	return f.itemID, f.State() == RemovalPendingConfirm
}

// Request asks to remove itemID. Re-requesting the same item is idempotent.
func (f *RemovalFlow) Request(itemID string) error {
	if pending, ok := f.Pending(); ok {
		if pending == itemID {
			return nil
		}
		return ErrRemovalPending
	}
	f.state = RemovalPendingConfirm
	f.itemID = itemID
	return nil
}

// Confirm returns the item to remove and resets to Idle.
func (f *RemovalFlow) Confirm() (string, error) {
	itemID, ok := f.Pending()
	if !ok {
		return "", ErrNoPendingRemoval
	}
	f.Reset()
	return itemID, nil
}

func (f *RemovalFlow) Cancel() error {
	if _, ok := f.Pending(); !ok {
		return ErrNoPendingRemoval
	}
	f.Reset()
	return nil
}

func (f *RemovalFlow) Reset() {
	f.state = RemovalIdle
	f.itemID = ""
}
