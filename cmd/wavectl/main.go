package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/matheus3301/wave/internal/api"
	"github.com/matheus3301/wave/internal/client"
	"github.com/matheus3301/wave/internal/feed"
	"github.com/matheus3301/wave/internal/lock"
	"github.com/matheus3301/wave/internal/profile"
)

func main() {
	profileFlag := flag.String("profile", "", "profile name (overrides config default)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Usage = printUsage
	flag.Parse()

	profileName := profile.Resolve(*profileFlag)
	if err := profile.ValidateName(profileName); err != nil {
		fatal(err)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	socketPath := profile.SocketPath(profileName)
	if !client.Probe(socketPath) {
		msg := fmt.Sprintf("no daemon running for profile %q (start it with: waved --profile %s)", profileName, profileName)
		if pid, ok := lock.Holder(profile.Dir(profileName)); ok {
			msg = fmt.Sprintf("daemon for profile %q (pid %d) is not answering on %s", profileName, pid, socketPath)
		}
		fatal(errors.New(msg))
	}

	c, err := client.New(socketPath)
	if err != nil {
		fatal(fmt.Errorf("cannot connect to daemon for profile %q: %w", profileName, err))
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out := printer{json: *jsonFlag}
	switch args[0] {
	case "status":
		cmdStatus(ctx, c, out)
	case "login":
		need(args, 2, "wavectl login <identifier>")
		cmdLogin(ctx, c, out, args[1])
	case "logout":
		cmdLogout(ctx, c, out)
	case "theme":
		mode := ""
		if len(args) > 1 {
			mode = args[1]
		}
		cmdTheme(ctx, c, out, mode)
	case "chats":
		cmdChats(ctx, c, out)
	case "messages":
		need(args, 2, "wavectl messages <conversation-id>")
		cmdMessages(ctx, c, out, args[1])
	case "send":
		need(args, 3, "wavectl send <conversation-id> <text>")
		cmdSend(ctx, c, out, args[1], strings.Join(args[2:], " "))
	case "posts":
		cmdPosts(ctx, c, out)
	case "reels":
		cmdReels(ctx, c, out)
	case "news":
		cmdNews(ctx, c, out)
	case "services":
		cmdServices(ctx, c, out, strings.Join(args[1:], " "))
	case "like":
		need(args, 2, "wavectl like <item-id>")
		cmdLike(ctx, c, out, args[1])
	case "profile":
		cmdProfile(ctx, c, out)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: wavectl [--profile <name>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  status                   Show profile status")
	fmt.Fprintln(os.Stderr, "  login <identifier>       Sign in")
	fmt.Fprintln(os.Stderr, "  logout                   Request sign out")
	fmt.Fprintln(os.Stderr, "  theme [light|dark|toggle]  Show or change the theme")
	fmt.Fprintln(os.Stderr, "  chats                    List conversations")
	fmt.Fprintln(os.Stderr, "  messages <id>            Show a conversation, oldest first")
	fmt.Fprintln(os.Stderr, "  send <id> <text>         Send a message")
	fmt.Fprintln(os.Stderr, "  posts                    List posts")
	fmt.Fprintln(os.Stderr, "  reels                    List reels")
	fmt.Fprintln(os.Stderr, "  news                     List news")
	fmt.Fprintln(os.Stderr, "  services [query]         List or search services")
	fmt.Fprintln(os.Stderr, "  like <item-id>           Toggle like on a post or reel")
	fmt.Fprintln(os.Stderr, "  profile                  Show your profile")
}

func need(args []string, n int, usage string) {
	if len(args) < n {
		fmt.Fprintln(os.Stderr, "usage: "+usage)
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %s\n", client.ErrorMessage(err))
	os.Exit(1)
}

// printer writes either the raw response as JSON or the human form.
type printer struct {
	json bool
}

func (p printer) emit(v any, human func()) {
	if !p.json {
		human()
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
	}
}

func cmdStatus(ctx context.Context, c *client.Client, out printer) {
	resp, err := c.Session.GetStatus(ctx, &api.Empty{})
	if err != nil {
		fatal(err)
	}
	out.emit(resp, func() {
		fmt.Printf("Profile: %s\n", resp.Profile)
		fmt.Printf("Status:  %s\n", resp.Status)
		if resp.Authenticated {
			fmt.Printf("User:    %s\n", resp.Identifier)
		}
		fmt.Printf("Theme:   %s\n", resp.Theme)
		fmt.Printf("Chats:   %d\n", resp.ChatCount)
		fmt.Printf("Uptime:  %s\n", (time.Duration(resp.UptimeMs) * time.Millisecond).Round(time.Second))
	})
}

func cmdLogin(ctx context.Context, c *client.Client, out printer, identifier string) {
	resp, err := c.Session.Login(ctx, &api.LoginRequest{Identifier: identifier})
	if err != nil {
		fatal(err)
	}
	out.emit(resp, func() {
		fmt.Printf("Signed in as %s\n", resp.Session.DisplayName)
	})
}

func cmdLogout(ctx context.Context, c *client.Client, out printer) {
	resp, err := c.Session.Logout(ctx, &api.Empty{})
	if err != nil {
		fatal(err)
	}
	out.emit(resp, func() { fmt.Println(resp.Message) })
}

func cmdTheme(ctx context.Context, c *client.Client, out printer, mode string) {
	var (
		resp *api.ThemeResponse
		err  error
	)
	switch mode {
	case "":
		resp, err = c.Session.GetTheme(ctx, &api.Empty{})
	case "toggle":
		resp, err = c.Session.ToggleTheme(ctx, &api.Empty{})
	default:
		resp, err = c.Session.SetTheme(ctx, &api.SetThemeRequest{Theme: mode})
	}
	if err != nil {
		fatal(err)
	}
	out.emit(resp, func() { fmt.Println(resp.Theme) })
}

func cmdChats(ctx context.Context, c *client.Client, out printer) {
	resp, err := c.Chat.ListChats(ctx, &api.Empty{})
	if err != nil {
		fatal(err)
	}
	out.emit(resp, func() {
		for _, ch := range resp.Chats {
			online := " "
			if ch.IsOnline {
				online = "*"
			}
			unread := ""
			if ch.UnreadCount > 0 {
				unread = fmt.Sprintf(" (%d)", ch.UnreadCount)
			}
			fmt.Printf("%-4s %s %-20s %-8s %s%s\n", ch.ID, online, ch.DisplayName, ch.LastMessageTimestamp, ch.LastMessagePreview, unread)
		}
	})
}

func cmdMessages(ctx context.Context, c *client.Client, out printer, conversationID string) {
	resp, err := c.Message.ListMessages(ctx, &api.ListMessagesRequest{ConversationID: conversationID})
	if err != nil {
		fatal(err)
	}
	out.emit(resp, func() {
		for _, m := range resp.Messages {
			who := "them"
			if m.IsOutbound {
				who = "me"
			}
			fmt.Printf("[%s] %-4s %s\n", m.Timestamp, who, m.Text)
		}
	})
}

func cmdSend(ctx context.Context, c *client.Client, out printer, conversationID, text string) {
	resp, err := c.Message.SendText(ctx, &api.SendTextRequest{ConversationID: conversationID, Text: text})
	if err != nil {
		fatal(err)
	}
	out.emit(resp, func() { fmt.Printf("sent %s\n", resp.Message.ID) })
}

func cmdPosts(ctx context.Context, c *client.Client, out printer) {
	resp, err := c.Feed.ListPosts(ctx, &api.Empty{})
	if err != nil {
		fatal(err)
	}
	out.emit(resp, func() {
		for _, p := range resp.Posts {
			fmt.Printf("%-8s %-14s %s %6s  %s\n", p.ID, p.Author, heart(p.IsLiked), feed.FormatCount(p.LikeCount), p.Caption)
		}
	})
}

func cmdReels(ctx context.Context, c *client.Client, out printer) {
	resp, err := c.Feed.ListReels(ctx, &api.Empty{})
	if err != nil {
		fatal(err)
	}
	out.emit(resp, func() {
		for _, r := range resp.Reels {
			fmt.Printf("%-8s %-18s %s %6s  %s\n", r.ID, r.Author, heart(r.IsLiked), feed.FormatCount(r.LikeCount), r.Caption)
		}
	})
}

func cmdNews(ctx context.Context, c *client.Client, out printer) {
	resp, err := c.Feed.ListNews(ctx, &api.Empty{})
	if err != nil {
		fatal(err)
	}
	out.emit(resp, func() {
		for _, n := range resp.News {
			fmt.Printf("%s  [%s] %s\n    %s\n", n.Timestamp, n.Category, n.Title, n.Summary)
		}
	})
}

func cmdServices(ctx context.Context, c *client.Client, out printer, query string) {
	resp, err := c.Feed.ListServices(ctx, &api.ListServicesRequest{Query: query})
	if err != nil {
		fatal(err)
	}
	out.emit(resp, func() {
		if len(resp.Services) == 0 {
			fmt.Println("No services found.")
			return
		}
		for _, s := range resp.Services {
			fmt.Printf("%-10s %s\n", s.Name, s.Description)
		}
	})
}

func cmdLike(ctx context.Context, c *client.Client, out printer, itemID string) {
	resp, err := c.Feed.ToggleLike(ctx, &api.ToggleLikeRequest{ItemID: itemID})
	if err != nil {
		fatal(err)
	}
	out.emit(resp, func() {
		fmt.Printf("%s %s %s\n", resp.ItemID, heart(resp.Likes.IsLiked), feed.FormatCount(resp.Likes.LikeCount))
	})
}

func cmdProfile(ctx context.Context, c *client.Client, out printer) {
	resp, err := c.Feed.GetProfile(ctx, &api.Empty{})
	if err != nil {
		fatal(err)
	}
	p := resp.Profile
	out.emit(resp, func() {
		fmt.Printf("%s %s\n%s\n", p.Name, p.Handle, p.Bio)
		fmt.Printf("%s posts  %s followers  %s following\n",
			feed.FormatCount(p.Posts), feed.FormatCount(p.Followers), feed.FormatCount(p.Following))
	})
}

func heart(liked bool) string {
	if liked {
		return "♥"
	}
	return "♡"
}
