package game

import "brainybunch/internal/model"

// Scoring policy constants. Difficulty never factors in.
const (
	BasePoints         = 1.0
	SpeedBonusPoints   = 0.5
	SpeedBonusWindowMs = 3000
	StreakBonusPoints  = 1.0
	StreakBonusAt      = 3 // post-increment streak that first earns the bonus

	// MaxPointsPerRound is the theoretical per-question ceiling, used for
	// solo-mode grading.
	MaxPointsPerRound = BasePoints + SpeedBonusPoints + StreakBonusPoints
)

// Score applies the scoring policy to a single answer. streakBefore is the
// subject's consecutive-correct counter evaluated before this answer; the
// returned counter is what the subject's streak becomes afterwards.
//
// An incorrect (or timed-out) answer scores zero and resets the streak. A
// correct one earns the base point, a speed bonus under 3 seconds, and the
// streak bonus once the incremented counter reaches 3. The counter keeps
// climbing while the streak holds, so the bonus fires on every correct
// answer from the third onward.
func Score(correct bool, elapsedMs int64, streakBefore int) (model.AnswerOutcome, int) {
	if !correct {
		return model.AnswerOutcome{}, 0
	}

	outcome := model.AnswerOutcome{Correct: true, Points: BasePoints}
	if elapsedMs >= 0 && elapsedMs < SpeedBonusWindowMs {
		outcome.SpeedBonus = true
		outcome.Points += SpeedBonusPoints
	}

	streak := streakBefore + 1
	if streak >= StreakBonusAt {
		outcome.StreakBonus = true
		outcome.Points += StreakBonusPoints
	}
	return outcome, streak
}

// Grade bands a solo score against the per-question ceiling.
func Grade(score float64, rounds int) string {
	ceiling := float64(rounds) * MaxPointsPerRound
	if ceiling <= 0 {
		return "F"
	}
	pct := score / ceiling * 100

	switch {
	case pct >= 90:
		return "A+"
	case pct >= 80:
		return "A"
	case pct >= 70:
		return "B"
	case pct >= 60:
		return "C"
	case pct >= 50:
		return "D"
	}
	return "F"
}
