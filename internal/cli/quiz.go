package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fun2learn/satvocab/internal/common"
	"github.com/fun2learn/satvocab/internal/vocab"
)

func (a *App) listUnits() {
	for _, u := range vocab.Units() {
		fmt.Printf("%d: %s (%d questions)\n", u.ID, u.Title, len(u.Questions))
	}
}

// runQuiz asks the unit's questions in random order and records the score.
// Stored progress only moves up: a worse run keeps the previous best.
func (a *App) runQuiz(ctx context.Context, unitID int) {
	if !a.isLoggedIn() {
		fmt.Println(common.UserMessage(common.ErrNotAuthenticated))
		return
	}

	unit, ok := vocab.FindUnit(unitID)
	if !ok {
		fmt.Printf("Unknown unit: %d. Use 'units' to list them.\n", unitID)
		return
	}

	questions := vocab.QuizQuestions(a.rnd, unit)
	correct := 0

	for i, q := range questions {
		fmt.Printf("\nQuestion %d of %d\n%s\n", i+1, len(questions), q.Text)
		for _, o := range q.Options {
			fmt.Printf("  %s) %s\n", o.Label, o.Text)
		}

		answer, err := getSimpleText(a.reader, "Your answer (or q to stop)", os.Stdout)
		if err != nil {
			return
		}
		answer = strings.ToUpper(strings.TrimSpace(answer))
		if answer == "Q" {
			fmt.Println("Quiz stopped.")
			return
		}

		if answer == q.Answer {
			correct++
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Wrong. The answer was %s.\n", q.Answer)
		}
	}

	fmt.Printf("\nYou got %d out of %d.\n", correct, len(questions))

	best, improved, err := a.progress.SubmitScore(ctx, a.session.Email, unit.ID, correct)
	if err != nil {
		a.log.Error(ctx, "error saving quiz score", "error", err)
		fmt.Println(common.UserMessage(err))
		return
	}
	if improved {
		fmt.Printf("New best for %s: %d!\n", unit.Title, best)
	} else {
		fmt.Printf("Your best for %s stays at %d.\n", unit.Title, best)
	}
}
