package stats

import (
	"math"
	"sort"

	"github.com/flashdeck/backend/internal/domain"
)

const (
	// hardestMinAttempts is how often a card must have been answered before
	// its accuracy is considered meaningful for the hardest ranking.
	hardestMinAttempts = 3
	// hardestLimit caps the hardest-cards list.
	hardestLimit = 5
)

// Aggregate computes deck statistics from the cards' lifetime counters.
func Aggregate(cards []domain.Card) domain.DeckStats {
	stats := domain.DeckStats{TotalCards: len(cards)}

	for _, c := range cards {
		if c.Starred {
			stats.StarredCards++
		}
		stats.Attempts += c.Attempts
		stats.Correct += c.Correct
		stats.Incorrect += c.Incorrect
	}

	if stats.Attempts > 0 {
		stats.Accuracy = int(math.Round(100 * float64(stats.Correct) / float64(stats.Attempts)))
	}

	stats.Hardest = hardestCards(cards)
	return stats
}

// hardestCards ranks cards with enough attempts by ascending lifetime
// accuracy. The sort is stable, so equally hard cards keep their deck order.
func hardestCards(cards []domain.Card) []domain.HardCard {
	hard := make([]domain.HardCard, 0, hardestLimit)
	for _, c := range cards {
		if c.Attempts < hardestMinAttempts {
			continue
		}
		hard = append(hard, domain.HardCard{Card: c, Accuracy: c.Accuracy()})
	}

	sort.SliceStable(hard, func(i, j int) bool {
		return hard[i].Accuracy < hard[j].Accuracy
	})

	if len(hard) > hardestLimit {
		hard = hard[:hardestLimit]
	}
	return hard
}
