package review

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashdeck/backend/internal/domain"
)

func makeCards(n int) []domain.Card {
	cards := make([]domain.Card, n)
	for i := range cards {
		cards[i] = domain.Card{
			ID:        uuid.New(),
			FrontText: "front",
			BackText:  "back",
		}
	}
	return cards
}

func TestSession_EmptyDeck(t *testing.T) {
	t.Parallel()

	sess := newSession(uuid.New(), uuid.New(), domain.ReviewModeFlip, false, nil)

	assert.Equal(t, domain.ReviewPhaseEmpty, sess.Phase)

	_, ok := sess.Current()
	assert.False(t, ok)

	err := sess.flip()
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = sess.applyAnswer(true)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSession_Flip(t *testing.T) {
	t.Parallel()

	sess := newSession(uuid.New(), uuid.New(), domain.ReviewModeFlip, false, makeCards(2))

	assert.Equal(t, domain.CardFaceFront, sess.Face)

	require.NoError(t, sess.flip())
	assert.Equal(t, domain.CardFaceBack, sess.Face)

	require.NoError(t, sess.flip())
	assert.Equal(t, domain.CardFaceFront, sess.Face)
}

func TestSession_AnswerAdvancesAndFinishes(t *testing.T) {
	t.Parallel()

	cards := makeCards(3)
	sess := newSession(uuid.New(), uuid.New(), domain.ReviewModeFlip, false, cards)

	require.NoError(t, sess.flip())
	require.NoError(t, sess.applyAnswer(true))

	// advancing resets the face to the front
	assert.Equal(t, domain.CardFaceFront, sess.Face)
	assert.Equal(t, 1, sess.Index)
	assert.Equal(t, domain.ReviewPhaseActive, sess.Phase)

	require.NoError(t, sess.applyAnswer(false))
	require.NoError(t, sess.applyAnswer(true))

	assert.Equal(t, domain.ReviewPhaseFinished, sess.Phase)
	assert.Equal(t, 2, sess.Correct)
	assert.Equal(t, 1, sess.Incorrect)
	assert.Equal(t, []uuid.UUID{cards[1].ID}, sess.IncorrectIDs)

	_, ok := sess.Current()
	assert.False(t, ok)

	err := sess.applyAnswer(true)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSession_Score(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		correct   int
		incorrect int
		want      int
	}{
		{name: "no answers", correct: 0, incorrect: 0, want: 0},
		{name: "all correct", correct: 5, incorrect: 0, want: 100},
		{name: "all incorrect", correct: 0, incorrect: 4, want: 0},
		{name: "two thirds", correct: 2, incorrect: 1, want: 67},
		{name: "half", correct: 1, incorrect: 1, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sess := &Session{Correct: tt.correct, Incorrect: tt.incorrect}
			assert.Equal(t, tt.want, sess.Score())
		})
	}
}

func TestSession_RetryIncorrect(t *testing.T) {
	t.Parallel()

	cards := makeCards(4)
	sess := newSession(uuid.New(), uuid.New(), domain.ReviewModeFlip, false, cards)

	require.NoError(t, sess.applyAnswer(false)) // cards[0]
	require.NoError(t, sess.applyAnswer(true))  // cards[1]
	require.NoError(t, sess.applyAnswer(false)) // cards[2]
	require.NoError(t, sess.applyAnswer(true))  // cards[3]
	require.Equal(t, domain.ReviewPhaseFinished, sess.Phase)

	require.NoError(t, sess.retryIncorrect())

	// missed cards only, original order, counters reset
	require.Len(t, sess.Cards, 2)
	assert.Equal(t, cards[0].ID, sess.Cards[0].ID)
	assert.Equal(t, cards[2].ID, sess.Cards[1].ID)
	assert.Equal(t, domain.ReviewPhaseActive, sess.Phase)
	assert.Zero(t, sess.Correct)
	assert.Zero(t, sess.Incorrect)
	assert.Empty(t, sess.IncorrectIDs)
}

func TestSession_RetryIncorrect_NotAllowed(t *testing.T) {
	t.Parallel()

	t.Run("active run", func(t *testing.T) {
		t.Parallel()

		sess := newSession(uuid.New(), uuid.New(), domain.ReviewModeFlip, false, makeCards(2))
		err := sess.retryIncorrect()
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("perfect run", func(t *testing.T) {
		t.Parallel()

		sess := newSession(uuid.New(), uuid.New(), domain.ReviewModeFlip, false, makeCards(2))
		require.NoError(t, sess.applyAnswer(true))
		require.NoError(t, sess.applyAnswer(true))
		require.Equal(t, domain.ReviewPhaseFinished, sess.Phase)

		err := sess.retryIncorrect()
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestSession_Reset(t *testing.T) {
	t.Parallel()

	cards := makeCards(2)
	sess := newSession(uuid.New(), uuid.New(), domain.ReviewModeChoice, true, cards)

	require.NoError(t, sess.applyAnswer(false))
	require.NoError(t, sess.applyAnswer(true))

	sess.reset(cards)

	assert.Equal(t, domain.ReviewPhaseActive, sess.Phase)
	assert.Zero(t, sess.Index)
	assert.Zero(t, sess.Correct)
	assert.Zero(t, sess.Incorrect)
	assert.Empty(t, sess.IncorrectIDs)
	assert.Equal(t, domain.CardFaceFront, sess.Face)
	// mode and shuffle flag survive a reset
	assert.Equal(t, domain.ReviewModeChoice, sess.Mode)
	assert.True(t, sess.Shuffled)
}

func TestSession_UpdateCard(t *testing.T) {
	t.Parallel()

	cards := makeCards(2)
	sess := newSession(uuid.New(), uuid.New(), domain.ReviewModeFlip, false, cards)

	updated := cards[1]
	updated.Starred = true
	updated.Attempts = 7
	sess.updateCard(updated)

	assert.True(t, sess.Cards[1].Starred)
	assert.Equal(t, 7, sess.Cards[1].Attempts)

	// unknown ids are ignored
	sess.updateCard(domain.Card{ID: uuid.New(), Starred: true})
	assert.False(t, sess.Cards[0].Starred)
}

func TestSession_CounterInvariant(t *testing.T) {
	t.Parallel()

	sess := newSession(uuid.New(), uuid.New(), domain.ReviewModeFlip, false, makeCards(5))

	answers := []bool{true, false, true, true, false}
	for _, correct := range answers {
		require.NoError(t, sess.applyAnswer(correct))
	}

	assert.Equal(t, len(answers), sess.Correct+sess.Incorrect)
	assert.Equal(t, 3, sess.Correct)
	assert.Equal(t, 2, sess.Incorrect)
}

func TestSession_ApplyAnswerError(t *testing.T) {
	t.Parallel()

	sess := newSession(uuid.New(), uuid.New(), domain.ReviewModeFlip, false, makeCards(1))
	require.NoError(t, sess.applyAnswer(true))

	err := sess.applyAnswer(true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
}
