package domain

import "math"

// ReviewMode selects how a card is answered during review.
type ReviewMode string

const (
	// ReviewModeFlip shows the front, flips to the back, then asks the
	// user to self-grade.
	ReviewModeFlip ReviewMode = "FLIP"
	// ReviewModeChoice shows the front with several candidate backs and
	// grades by the chosen option.
	ReviewModeChoice ReviewMode = "CHOICE"
)

func (m ReviewMode) String() string { return string(m) }

func (m ReviewMode) IsValid() bool {
	switch m {
	case ReviewModeFlip, ReviewModeChoice:
		return true
	}
	return false
}

// CardFace is the side of a flashcard currently shown.
type CardFace string

const (
	CardFaceFront CardFace = "FRONT"
	CardFaceBack  CardFace = "BACK"
)

func (f CardFace) String() string { return string(f) }

// ReviewPhase is the lifecycle state of a review session.
type ReviewPhase string

const (
	// ReviewPhaseEmpty means the deck had no cards to review.
	ReviewPhaseEmpty ReviewPhase = "EMPTY"
	// ReviewPhaseActive means a card is currently presented.
	ReviewPhaseActive ReviewPhase = "ACTIVE"
	// ReviewPhaseFinished means every card in the run was answered.
	ReviewPhaseFinished ReviewPhase = "FINISHED"
)

func (p ReviewPhase) String() string { return string(p) }

// Score returns the session score as a whole percentage,
// rounded half away from zero. No answers yields 0, not a
// division error.
func Score(correct, incorrect int) int {
	total := correct + incorrect
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
