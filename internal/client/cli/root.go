package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if user := a.session.Current(); user != nil {
		s = user.Username + " "
	}
	s = s + string(a.theme.Current())
	return fmt.Sprintf("(%s)", s)
}

// Root runs the command loop. Unknown commands are reported back to the
// user; the loop exits on EOF or "exit"/"quit".
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the storefront CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "store %s> ", a.getStatus())
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
		a.dispatch(ctx, cmd, args)

		if cmd == "exit" || cmd == "quit" {
			return
		}
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		a.help()
	case "products", "p":
		a.Products(ctx)
	case "search":
		a.Search(ctx, strings.Join(args, " "))
	case "categories":
		a.Categories(ctx)
	case "category":
		a.Category(ctx, strings.Join(args, " "))
	case "sort":
		a.Sort(ctx, strings.Join(args, " "))
	case "show":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: show <id>")
			return
		}
		a.Show(ctx, args[0])
	case "add":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: add <id>")
			return
		}
		a.Add(ctx, args[0])
	case "cart", "c":
		a.Cart(ctx)
	case "qty":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: qty <id> <quantity>")
			return
		}
		a.SetQuantity(ctx, args[0], args[1])
	case "remove":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: remove <id>")
			return
		}
		a.Remove(ctx, args[0])
	case "checkout":
		a.Checkout(ctx)
	case "register":
		a.Register(ctx)
	case "login":
		a.Login(ctx)
	case "logout":
		a.Logout(ctx)
	case "notifications":
		a.ToggleNotifications(ctx)
	case "theme":
		a.ToggleTheme(ctx)
	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}

	a.renderNotification()
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: products, search, categories, category, sort, show, add, cart, qty, remove, checkout, notifications, theme, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: products, search, categories, category, sort, show, add, cart, qty, remove, register, login, theme, exit")
	}
}

// renderNotification prints the transient banner, if one is visible.
func (a *App) renderNotification() {
	if n := a.notifier.Current(); n != nil {
		fmt.Fprintf(a.out, "[%s] %s\n", n.Kind, n.Message)
	}
}
