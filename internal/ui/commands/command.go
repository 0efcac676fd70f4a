package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pupfinder/internal/domain"
	"pupfinder/internal/logic"
	"pupfinder/internal/ui/services/match"
	"pupfinder/internal/ui/services/search"
	"pupfinder/internal/ui/services/session"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// Client is everything commands need from the remote service
type Client interface {
	logic.Catalog
	logic.Authenticator
}

// CommandContext provides context for command execution
type CommandContext struct {
	Client  Client
	Timeout time.Duration // per command, covers every request it makes
}

func (c *CommandContext) context() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}

// Result messages, delivered back to the model's Update

type LoginDoneMsg struct {
	Result session.LoginResult
}

type LogoutDoneMsg struct {
	Result session.LogoutResult
}

type SearchDoneMsg struct {
	Result search.Result
}

type MatchDoneMsg struct {
	Result match.Result
}

type BreedsDoneMsg struct {
	Breeds []string
	Err    error
}

// LoginCommand posts credentials
type LoginCommand struct {
	ctx   *CommandContext
	creds domain.Credentials
}

// NewLoginCommand creates a new login command
func NewLoginCommand(ctx *CommandContext, creds domain.Credentials) *LoginCommand {
	return &LoginCommand{ctx: ctx, creds: creds}
}

// Execute performs the login off the UI goroutine
func (c *LoginCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.context()
		defer cancel()
		return LoginDoneMsg{Result: session.Authenticate(ctx, c.ctx.Client, c.creds)}
	}
}

// LogoutCommand ends the remote session
type LogoutCommand struct {
	ctx *CommandContext
}

// NewLogoutCommand creates a new logout command
func NewLogoutCommand(ctx *CommandContext) *LogoutCommand {
	return &LogoutCommand{ctx: ctx}
}

// Execute performs the logout off the UI goroutine
func (c *LogoutCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.context()
		defer cancel()
		return LogoutDoneMsg{Result: session.EndSession(ctx, c.ctx.Client)}
	}
}

// SearchCommand fetches one search page
type SearchCommand struct {
	ctx *CommandContext
	req search.Request
}

// NewSearchCommand creates a new search command
func NewSearchCommand(ctx *CommandContext, req search.Request) *SearchCommand {
	return &SearchCommand{ctx: ctx, req: req}
}

// Execute performs the search off the UI goroutine
func (c *SearchCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.context()
		defer cancel()
		return SearchDoneMsg{Result: search.Fetch(ctx, c.ctx.Client, c.req)}
	}
}

// MatchCommand asks for a match and resolves it
type MatchCommand struct {
	ctx *CommandContext
	req match.Request
}

// NewMatchCommand creates a new match command
func NewMatchCommand(ctx *CommandContext, req match.Request) *MatchCommand {
	return &MatchCommand{ctx: ctx, req: req}
}

// Execute performs the match off the UI goroutine
func (c *MatchCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.context()
		defer cancel()
		return MatchDoneMsg{Result: match.Fetch(ctx, c.ctx.Client, c.req)}
	}
}

// BreedsCommand loads the breed list for the picker
type BreedsCommand struct {
	ctx *CommandContext
}

// NewBreedsCommand creates a new breeds command
func NewBreedsCommand(ctx *CommandContext) *BreedsCommand {
	return &BreedsCommand{ctx: ctx}
}

// Execute fetches the breeds off the UI goroutine
func (c *BreedsCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.context()
		defer cancel()
		breeds, err := c.ctx.Client.Breeds(ctx)
		return BreedsDoneMsg{Breeds: breeds, Err: err}
	}
}
