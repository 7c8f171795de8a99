package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Name)
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Println("Available commands: cards, save <word>, mywords, units, quiz <unit>, sprint, top, logout, exit")
	} else {
		fmt.Println("Available commands: signup, login, exit")
	}
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to SAT Vocab (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	// pick up a session left over from a previous run
	if s, err := a.auth.Current(ctx); err == nil && s != nil {
		a.session = s
		fmt.Printf("Welcome back, %s!\n", s.Name)
	}

	for {
		fmt.Printf("satvocab %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "signup":
			a.Signup(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "cards":
			a.flashcards(ctx)
		case "save":
			if len(args) == 0 {
				fmt.Println("Usage: save <word>")
				continue
			}
			a.saveWord(ctx, args[0])
		case "mywords":
			a.myWords(ctx)
		case "units":
			a.listUnits()
		case "quiz":
			if len(args) == 0 {
				fmt.Println("Usage: quiz <unit>")
				continue
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Println("Usage: quiz <unit>")
				continue
			}
			a.runQuiz(ctx, id)
		case "sprint":
			a.runSprint(ctx)
		case "top":
			a.showLeaderboard(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
