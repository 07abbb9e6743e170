package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Feed(ctx context.Context) error
	Mine(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Post(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Unlike(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Comments(ctx context.Context, args []string) error
	EditComment(ctx context.Context, args []string) error
	DeleteComment(ctx context.Context, args []string) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// Command errors are printed and the loop goes on. It returns on EOF or
// when the user types "exit" or "quit".
//
// Command prompts read from the same reader, so a command may consume the
// lines that follow it.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("puisi %s> ", statusFn()))
		line, readErr := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: feed, mine, show <id>, post, edit <id>, delete <id>, like <id>, unlike <id>, comment <id>, comments <id>, editcomment <id>, delcomment <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, feed, show <id>, comments <id>, exit")
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "feed", "l":
			err = a.Feed(ctx)
		case "mine":
			err = a.Mine(ctx)
		case "show":
			err = a.Show(ctx, args)
		case "post":
			err = a.Post(ctx)
		case "edit":
			err = a.Edit(ctx, args)
		case "delete":
			err = a.Delete(ctx, args)
		case "like":
			err = a.Like(ctx, args)
		case "unlike":
			err = a.Unlike(ctx, args)
		case "comment":
			err = a.Comment(ctx, args)
		case "comments":
			err = a.Comments(ctx, args)
		case "editcomment":
			err = a.EditComment(ctx, args)
		case "delcomment":
			err = a.DeleteComment(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", describe(err))
		}
		if readErr != nil {
			return
		}
	}
}
