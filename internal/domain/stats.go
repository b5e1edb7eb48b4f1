package domain

// DeckStats aggregates lifetime review counters across one deck's cards.
type DeckStats struct {
	TotalCards   int
	StarredCards int
	Attempts     int
	Correct      int
	Incorrect    int
	// Accuracy is a whole percentage, 0 when no card was ever answered.
	Accuracy int
	// Hardest holds up to 5 cards with at least 3 attempts, least
	// accurate first. Ties keep deck order.
	Hardest []HardCard
}

// HardCard is a card annotated with its lifetime accuracy for the
// hardest-cards ranking.
type HardCard struct {
	Card     Card
	Accuracy float64
}
