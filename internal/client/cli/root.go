package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if id := a.session.UserID(); id != "" {
		return fmt.Sprintf("(%s)", id)
	}
	return ""
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Println("Available commands: create, organized, invited, show <id>, invite <id>, join <id>, respond <id>, search, delete <id>, logout, exit")
	} else {
		fmt.Println("Available commands: register, login, exit")
	}
}

// Root runs the interactive command loop until EOF or "exit".
func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to the event planner CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("ep %s> ", a.getStatus())
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

		requireID := func() (string, bool) {
			if len(args) == 0 {
				fmt.Printf("Usage: %s <event id>\n", cmd)
				return "", false
			}
			return args[0], true
		}

		switch cmd {
		case "help":
			a.printHelp()

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "create":
			_ = a.Create(ctx)
		case "organized":
			_ = a.Organized(ctx)
		case "invited":
			_ = a.Invited(ctx)
		case "search":
			_ = a.Search(ctx)

		case "show":
			if id, ok := requireID(); ok {
				_ = a.Show(ctx, id)
			}
		case "invite":
			if id, ok := requireID(); ok {
				_ = a.Invite(ctx, id)
			}
		case "join":
			if id, ok := requireID(); ok {
				_ = a.Join(ctx, id)
			}
		case "respond":
			if id, ok := requireID(); ok {
				_ = a.Respond(ctx, id)
			}
		case "delete":
			if id, ok := requireID(); ok {
				_ = a.Delete(ctx, id)
			}

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
