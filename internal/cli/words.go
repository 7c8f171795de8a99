package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fun2learn/satvocab/internal/common"
	"github.com/fun2learn/satvocab/internal/vocab"
)

// flashcards walks the word list one card at a time. Enter shows the next
// card, "s" toggles the saved mark, "q" returns to the shell.
func (a *App) flashcards(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println(common.UserMessage(common.ErrNotAuthenticated))
		return
	}

	for _, w := range vocab.Words() {
		saved, err := a.words.Saved(ctx, a.session.Email, w.Word)
		if err != nil {
			a.log.Error(ctx, "error reading saved words", "error", err)
			return
		}

		mark := " "
		if saved {
			mark = "*"
		}
		fmt.Printf("[%s] %s - %s\n", mark, w.Word, w.Meaning)

		if url, err := a.media.IllustrationURL(ctx, w.Word); err == nil && url != "" {
			fmt.Printf("    illustration: %s\n", url)
		}

		line, err := getSimpleText(a.reader, "(Enter: next, s: save/unsave, q: quit)", os.Stdout)
		if err != nil {
			return
		}
		switch strings.ToLower(line) {
		case "s":
			a.saveWord(ctx, w.Word)
		case "q":
			return
		}
	}
	fmt.Println("That was the last card.")
}

// saveWord toggles word in the current user's saved list.
func (a *App) saveWord(ctx context.Context, word string) {
	if !a.isLoggedIn() {
		fmt.Println(common.UserMessage(common.ErrNotAuthenticated))
		return
	}

	if _, ok := vocab.FindWord(word); !ok {
		fmt.Printf("Unknown word: %s\n", word)
		return
	}

	saved, err := a.words.Toggle(ctx, a.session.Email, word)
	if err != nil {
		a.log.Error(ctx, "error saving word", "error", err)
		fmt.Println(common.UserMessage(err))
		return
	}
	if saved {
		fmt.Printf("Saved %q.\n", word)
	} else {
		fmt.Printf("Removed %q from saved words.\n", word)
	}
}

// myWords lists the current user's saved words with their meanings.
func (a *App) myWords(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Println(common.UserMessage(common.ErrNotAuthenticated))
		return
	}

	saved, err := a.words.SavedWords(ctx, a.session.Email)
	if err != nil {
		a.log.Error(ctx, "error reading saved words", "error", err)
		fmt.Println(common.UserMessage(err))
		return
	}

	if len(saved) == 0 {
		fmt.Println("No saved words yet. Use 'save <word>' or press 's' on a flashcard.")
		return
	}

	for _, word := range saved {
		if w, ok := vocab.FindWord(word); ok {
			fmt.Printf("%s - %s\n", w.Word, w.Meaning)
		} else {
			fmt.Println(word)
		}
	}
}
