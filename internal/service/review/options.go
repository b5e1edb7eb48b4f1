package review

import (
	"math/rand/v2"

	"github.com/flashdeck/backend/internal/domain"
)

// buildChoiceOptions assembles the multiple-choice answers for a card: the
// correct back plus up to total-1 distinct backs drawn from the rest of the
// deck, shuffled. Duplicates are collapsed, so a one-card deck yields a
// single option.
func buildChoiceOptions(cards []domain.Card, current domain.Card, total int) []string {
	if total < 1 {
		total = 1
	}

	seen := map[string]bool{current.BackText: true}

	distractors := make([]string, 0, len(cards))
	for _, c := range cards {
		if c.ID == current.ID || seen[c.BackText] {
			continue
		}
		seen[c.BackText] = true
		distractors = append(distractors, c.BackText)
	}

	rand.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	if len(distractors) > total-1 {
		distractors = distractors[:total-1]
	}

	options := append([]string{current.BackText}, distractors...)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options
}

// shuffledCopy returns the cards in random order without touching the input.
func shuffledCopy(cards []domain.Card) []domain.Card {
	out := make([]domain.Card, len(cards))
	copy(out, cards)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
