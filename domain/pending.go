package domain

// RoundReply is one participant's usable round-1 response, kept only long
// enough to frame round-2 prompts.
type RoundReply struct {
	Handle  Handle
	Name    string
	Content string
}

// PendingRoundContext is the snapshot held while the session awaits the
// user's debate decision. It exists if and only if the phase is
// awaiting-round2 and is discarded on phase exit regardless of outcome.
type PendingRoundContext struct {
	Utterance string
	Eligible  []Participant
	Replies   []RoundReply
}
