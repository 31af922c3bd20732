package mines

// Status is the lifecycle of a [GameSession]. It only ever moves forward:
// NotStarted to InProgress on the first reveal, InProgress to exactly one of
// Won or Lost, and nothing leaves a terminal status.
type Status int8

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game is settled.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Reason explains a refused move. Refusals are expected results of ordinary
// play, so they travel as values alongside the outcome, never as errors.
type Reason int8

const (
	ReasonNone Reason = iota
	ReasonOutOfBounds
	ReasonAlreadyRevealed
	ReasonAlreadyFlagged
	ReasonMaxFlagsReached
	ReasonGameOver
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonOutOfBounds:
		return "out of bounds"
	case ReasonAlreadyRevealed:
		return "already revealed"
	case ReasonAlreadyFlagged:
		return "flagged, unflag first"
	case ReasonMaxFlagsReached:
		return "no flags left"
	case ReasonGameOver:
		return "game is over"
	default:
		return "unknown"
	}
}

// RevealOutcome classifies what a reveal did to the session.
type RevealOutcome int8

const (
	RevealNoOp RevealOutcome = iota
	RevealContinue
	RevealWin
	RevealLoss
)

func (o RevealOutcome) String() string {
	switch o {
	case RevealNoOp:
		return "no-op"
	case RevealContinue:
		return "continue"
	case RevealWin:
		return "win"
	case RevealLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// RevealResult is the full answer to a reveal request. Reason is set only
// when Outcome is [RevealNoOp].
type RevealResult struct {
	Outcome RevealOutcome
	Reason  Reason
}

// FlagOutcome classifies what a flag toggle did.
type FlagOutcome int8

const (
	FlagRejected FlagOutcome = iota
	FlagPlaced
	FlagRemoved
)

func (o FlagOutcome) String() string {
	switch o {
	case FlagRejected:
		return "rejected"
	case FlagPlaced:
		return "placed"
	case FlagRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// FlagResult is the full answer to a flag toggle. Reason is set only when
// Outcome is [FlagRejected].
type FlagResult struct {
	Outcome FlagOutcome
	Reason  Reason
}
