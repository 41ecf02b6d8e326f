package topics

const (
	// Bets
	BetOutcome = "bet_outcome"
)
