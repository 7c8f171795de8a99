package vocab

import (
	"math/rand"

	"github.com/fun2learn/satvocab/internal/models"
)

// Sprint game rules, carried over from the original game view.
const (
	SprintDurationSeconds = 30
	SprintCorrectPoints   = 10
	SprintWrongPenalty    = 5
	SprintOptionCount     = 4
)

// QuizSize is how many questions one quiz run asks.
const QuizSize = 10

// QuizQuestions picks up to QuizSize questions of u in random order.
// The unit's question slice is never modified.
func QuizQuestions(r *rand.Rand, u models.Unit) []models.Question {
	qs := append([]models.Question(nil), u.Questions...)
	r.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	if len(qs) > QuizSize {
		qs = qs[:QuizSize]
	}
	return qs
}

// SprintRound picks a random target word plus three distractors and returns
// the target together with the shuffled options.
func SprintRound(r *rand.Rand, words []models.WordItem) (models.WordItem, []models.WordItem) {
	target := words[r.Intn(len(words))]

	others := make([]models.WordItem, 0, len(words)-1)
	for _, w := range words {
		if w.Word != target.Word {
			others = append(others, w)
		}
	}
	r.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })

	n := SprintOptionCount - 1
	if n > len(others) {
		n = len(others)
	}
	options := append(others[:n:n], target)
	r.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return target, options
}

// SprintScore applies one guess to score: correct answers earn points,
// wrong ones cost some, and the score never drops below zero.
func SprintScore(score int, correct bool) int {
	if correct {
		return score + SprintCorrectPoints
	}
	score -= SprintWrongPenalty
	if score < 0 {
		score = 0
	}
	return score
}
