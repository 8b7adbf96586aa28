package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pricepeek/pricepeek/internal/auth"
	"github.com/pricepeek/pricepeek/pkg/domain"
)

// authMode selects which tab of the auth form is active. Switching
// tabs is a pure UI toggle with no effect on stored data.
type authMode int

const (
	modeLogin authMode = iota
	modeSignup
)

type authField int

const (
	fieldEmail authField = iota
	fieldPassword
	fieldUsername // signup only
	numAuthFields
)

// authResultMsg carries the outcome of a submitted auth form.
type authResultMsg struct {
	session domain.Session
	err     error
}

type authModel struct {
	svc    *auth.Service
	mode   authMode
	fields [numAuthFields]string
	focus  authField
	status string
	width  int
	height int
}

func newAuthModel(svc *auth.Service) authModel {
	return authModel{svc: svc}
}

func (m authModel) Init() tea.Cmd {
	return nil
}

// fieldCount is how many fields the active mode shows.
func (m authModel) fieldCount() authField {
	if m.mode == modeSignup {
		return numAuthFields
	}
	return fieldUsername // login stops before the username field
}

func (m authModel) Update(msg tea.Msg) (authModel, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		// Success is handled by App (view switch); reset the form so a
		// later logout lands on a clean screen.
		m.fields = [numAuthFields]string{}
		m.focus = fieldEmail
		m.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m authModel) updateKeys(msg tea.KeyMsg) (authModel, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "left", "right":
		if m.mode == modeLogin {
			m.mode = modeSignup
		} else {
			m.mode = modeLogin
		}
		if m.focus >= m.fieldCount() {
			m.focus = fieldEmail
		}
		return m, nil
	case "tab", "down":
		m.focus = (m.focus + 1) % m.fieldCount()
		return m, nil
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + m.fieldCount()) % m.fieldCount()
		return m, nil
	case "enter":
		return m.submit()
	default:
		f := &m.fields[m.focus]
		*f = editRune(*f, msg.String())
		return m, nil
	}
}

func (m authModel) submit() (authModel, tea.Cmd) {
	email := strings.TrimSpace(m.fields[fieldEmail])
	password := m.fields[fieldPassword]
	username := strings.TrimSpace(m.fields[fieldUsername])
	svc := m.svc

	if m.mode == modeSignup {
		return m, func() tea.Msg {
			session, err := svc.SignUp(username, email, password)
			return authResultMsg{session: session, err: err}
		}
	}
	return m, func() tea.Msg {
		session, err := svc.LogIn(email, password)
		return authResultMsg{session: session, err: err}
	}
}

func (m authModel) View() string {
	var b strings.Builder

	// Tabs
	login := dimStyle.Render("Sign in")
	signup := dimStyle.Render("Sign up")
	if m.mode == modeLogin {
		login = selectedStyle.Underline(true).Render("Sign in")
	} else {
		signup = selectedStyle.Underline(true).Render("Sign up")
	}
	tabs := login + metaStyle.Render("  /  ") + signup + "  " + metaStyle.Render("(←/→)")
	b.WriteString(centerLine(tabs, m.width) + "\n\n")

	labels := [numAuthFields]string{"email", "password", "username"}
	for i := authField(0); i < m.fieldCount(); i++ {
		label := labels[i]
		value := m.fields[i]
		if i == fieldPassword {
			value = maskRunes(value)
		}
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
			value += accentStyle.Render("█")
		}
		fmt.Fprintf(&b, "  %s %s: %s\n", accentStyle.Render(cursor), style.Render(fmt.Sprintf("%-8s", label)), value)
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString("  " + errorStyle.Render(m.status) + "\n")
	} else if m.mode == modeSignup {
		b.WriteString("  " + metaStyle.Render(fmt.Sprintf("username %d+ chars, password %d+ chars", auth.MinUsernameLen, auth.MinPasswordLen)) + "\n")
	} else {
		b.WriteString("  " + metaStyle.Render("sign in to search card prices") + "\n")
	}

	return b.String()
}
