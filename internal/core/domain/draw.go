package domain

// DrawState is a step of the draw cycle.
type DrawState int32

const (
	DrawStateIdle DrawState = iota
	DrawStateParticipantsLoaded
	DrawStateWinnerSelected
	DrawStatePayoutSubmitted
	DrawStatePayoutConfirmed
	DrawStatePayoutTimedOut
	DrawStateWinnerRecorded
	DrawStateDepositsCleared
)

func (s DrawState) String() string {
	switch s {
	case DrawStateIdle:
		return "idle"
	case DrawStateParticipantsLoaded:
		return "participants_loaded"
	case DrawStateWinnerSelected:
		return "winner_selected"
	case DrawStatePayoutSubmitted:
		return "payout_submitted"
	case DrawStatePayoutConfirmed:
		return "payout_confirmed"
	case DrawStatePayoutTimedOut:
		return "payout_timed_out"
	case DrawStateWinnerRecorded:
		return "winner_recorded"
	case DrawStateDepositsCleared:
		return "deposits_cleared"
	default:
		return "unknown"
	}
}

// DrawOutcome summarises how a cycle ended without error.
type DrawOutcome string

const (
	DrawOutcomeNoParticipants DrawOutcome = "no_participants"
	DrawOutcomeNoPot          DrawOutcome = "no_pot"
	DrawOutcomePaid           DrawOutcome = "paid"
)

// DrawResult is returned by a completed cycle.
type DrawResult struct {
	Outcome DrawOutcome
	Winner  *Winner
	Cleared int64
}

// Message is a short operator-facing summary.
func (r *DrawResult) Message() string {
	switch r.Outcome {
	case DrawOutcomeNoParticipants:
		return "No participants"
	case DrawOutcomeNoPot:
		return "No pot to distribute"
	case DrawOutcomePaid:
		if r.Winner != nil && !r.Winner.Confirmed {
			return "Winner paid, confirmation pending"
		}
		return "Winner drawn and paid"
	default:
		return string(r.Outcome)
	}
}
