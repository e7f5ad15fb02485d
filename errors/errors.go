package errors

import "fmt"

var (
	ErrSessionBusy     = fmt.Errorf("session already processing an utterance")
	ErrNoActiveMeeting = fmt.Errorf("no active meeting")
	ErrNoPendingRound  = fmt.Errorf("no debate round awaiting a decision")
	ErrNoParticipants  = fmt.Errorf("no participant could be resolved for the meeting")
	ErrMeetingNotFound = fmt.Errorf("meeting not found")
	ErrDeskNotFound    = fmt.Errorf("desk record not found")
	ErrMeetingEnded    = fmt.Errorf("meeting has ended")
	ErrInvalidDeskMeta = fmt.Errorf("invalid desk display metadata")
	ErrEmptyWords      = fmt.Errorf("no words have been found")
)
