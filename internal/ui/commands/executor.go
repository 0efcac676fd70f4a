package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pupfinder/internal/domain"
	"pupfinder/internal/ui/services/match"
	"pupfinder/internal/ui/services/search"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(client Client, timeout time.Duration) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Client:  client,
			Timeout: timeout,
		},
	}
}

// ExecuteLogin creates and executes a login command
func (e *Executor) ExecuteLogin(creds domain.Credentials) tea.Cmd {
	return NewLoginCommand(e.ctx, creds).Execute()
}

// ExecuteLogout creates and executes a logout command
func (e *Executor) ExecuteLogout() tea.Cmd {
	return NewLogoutCommand(e.ctx).Execute()
}

// ExecuteSearch creates and executes a search command
func (e *Executor) ExecuteSearch(req search.Request) tea.Cmd {
	return NewSearchCommand(e.ctx, req).Execute()
}

// ExecuteMatch creates and executes a match command
func (e *Executor) ExecuteMatch(req match.Request) tea.Cmd {
	return NewMatchCommand(e.ctx, req).Execute()
}

// ExecuteBreeds creates and executes a breeds command
func (e *Executor) ExecuteBreeds() tea.Cmd {
	return NewBreedsCommand(e.ctx).Execute()
}
