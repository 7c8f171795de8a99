package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fun2learn/satvocab/internal/common"
	"github.com/fun2learn/satvocab/internal/vocab"
)

// now is a test seam for the sprint timer.
var now = time.Now

// runSprint plays timed rounds of "pick the meaning". Correct answers add
// points, wrong ones subtract, and the final score goes to the daily
// leaderboard.
func (a *App) runSprint(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println(common.UserMessage(common.ErrNotAuthenticated))
		return
	}

	fmt.Printf("Word sprint: you have %d seconds. Pick the meaning by number, q to stop early.\n",
		vocab.SprintDurationSeconds)

	deadline := now().Add(vocab.SprintDurationSeconds * time.Second)
	score := 0

	for now().Before(deadline) {
		target, options := vocab.SprintRound(a.rnd, vocab.Words())

		fmt.Printf("\n%s\n", target.Word)
		for i, o := range options {
			fmt.Printf("  %d) %s\n", i+1, o.Meaning)
		}

		answer, err := getSimpleText(a.reader, "Your answer", os.Stdout)
		if err != nil {
			return
		}
		if strings.EqualFold(strings.TrimSpace(answer), "q") {
			break
		}
		if now().After(deadline) {
			fmt.Println("Time is up!")
			break
		}

		pick, err := strconv.Atoi(strings.TrimSpace(answer))
		correct := err == nil && pick >= 1 && pick <= len(options) &&
			options[pick-1].Word == target.Word

		score = vocab.SprintScore(score, correct)
		if correct {
			fmt.Printf("Correct! Score: %d\n", score)
		} else {
			fmt.Printf("Wrong, it was %q. Score: %d\n", target.Meaning, score)
		}
	}

	fmt.Printf("\nFinal score: %d\n", score)

	if err := a.progress.RecordSprint(ctx, a.session.Name, score); err != nil {
		a.log.Error(ctx, "error recording sprint score", "error", err)
		fmt.Println(common.UserMessage(err))
		return
	}
	a.showLeaderboard(ctx)
}

// showLeaderboard prints today's top scores.
func (a *App) showLeaderboard(ctx context.Context) {
	entries, err := a.progress.Leaderboard(ctx)
	if err != nil {
		a.log.Error(ctx, "error loading leaderboard", "error", err)
		fmt.Println(common.UserMessage(err))
		return
	}

	if len(entries) == 0 {
		fmt.Println("No scores yet today. Play a sprint!")
		return
	}

	fmt.Println("Today's top scores:")
	for i, e := range entries {
		fmt.Printf("%2d. %-20s %d\n", i+1, e.Name, e.Score)
	}
}
