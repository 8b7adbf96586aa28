package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pricepeek/pricepeek/internal/auth"
	"github.com/pricepeek/pricepeek/pkg/client"
	"github.com/pricepeek/pricepeek/pkg/domain"
)

// view selects which screen fills the body. Exactly one is ever
// visible, and the choice is driven solely by session presence.
type view int

const (
	viewAuth view = iota
	viewSearch
)

// App is the root Bubbletea model.
type App struct {
	svc     *auth.Service
	client  *client.Client
	view    view
	session domain.Session
	authed  bool
	authM   authModel
	searchM searchModel
	width   int
	height  int
	frame   int // logo shimmer animation frame
}

// NewApp creates the TUI application. The starting view follows the
// stored session: signed in lands on search, otherwise on the auth form.
func NewApp(svc *auth.Service, c *client.Client) App {
	a := App{
		svc:     svc,
		client:  c,
		authM:   newAuthModel(svc),
		searchM: newSearchModel(c),
	}
	a.syncView()
	return a
}

// syncView re-derives the visible view from session presence. Called
// whenever a session is created or destroyed.
func (a *App) syncView() {
	if s, ok := a.svc.Current(); ok {
		a.session = s
		a.authed = true
		a.view = viewSearch
		return
	}
	a.session = domain.Session{}
	a.authed = false
	a.view = viewAuth
}

func (a App) Init() tea.Cmd {
	return shimmerTickCmd()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + blank(1) + help(1) = 4 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.authM, _ = a.authM.Update(bodyMsg)
		a.searchM, _ = a.searchM.Update(bodyMsg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case authResultMsg:
		var cmd tea.Cmd
		a.authM, cmd = a.authM.Update(msg)
		a.syncView()
		return a, cmd

	case cardsLoadedMsg, copyResultMsg:
		var cmd tea.Cmd
		a.searchM, cmd = a.searchM.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		}
		if a.view == viewSearch && !a.searchM.editing {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "x":
				a.svc.LogOut() //nolint:errcheck // session file may already be gone
				a.searchM = newSearchModel(a.client)
				a.syncView()
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewAuth:
		a.authM, cmd = a.authM.Update(msg)
	case viewSearch:
		a.searchM, cmd = a.searchM.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	// Header: centered shimmer logo + identity line
	header := centerLine(renderShimmerLogo(a.frame), a.width)
	if a.authed {
		who := metaStyle.Render("signed in as ") + accentStyle.Render(a.session.Username) +
			metaStyle.Render(" <"+a.session.Email+">")
		header += "\n" + centerLine(who, a.width)
	} else {
		header += "\n" + centerLine(metaStyle.Render("card prices at a glance"), a.width)
	}

	var body, help string
	switch a.view {
	case viewAuth:
		body = a.authM.View()
		help = " " + helpEntry("←/→", "mode") + "  " + helpEntry("tab", "next field") + "  " +
			helpEntry("enter", "submit") + "  " + helpEntry("ctrl+c", "quit")
	case viewSearch:
		body = a.searchM.View()
		help = " " + a.searchM.helpKeys()
	}

	// Chrome: header(2) + blank(1) + help(1) = 4 lines + body
	body = strings.TrimRight(truncateToHeight(body, a.height-4), "\n")

	return header + "\n\n" + body + "\n" + help
}
