package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pricepeek/pricepeek/internal/browser"
	"github.com/pricepeek/pricepeek/pkg/client"
	"github.com/pricepeek/pricepeek/pkg/domain"
)

// searchStatus is the status-line state machine.
type searchStatus int

const (
	statusIdle searchStatus = iota
	statusLoading
	statusLoaded
	statusFailed
)

// fetchFailedText is the single undifferentiated failure message: every
// network, HTTP, and decode error collapses into it.
const fetchFailedText = "Could not fetch prices. Try again."

// loadingText is shown from the moment a search is submitted until its
// response lands.
const loadingText = "Scraping prices and photos..."

// cardsLoadedMsg carries a finished search. There is no request
// sequencing on purpose: if two searches overlap, whichever response
// arrives last wins the display.
type cardsLoadedMsg struct {
	cards []domain.Card
	err   error
}

type copyResultMsg struct{ err error }

type searchModel struct {
	client    *client.Client
	query     string
	editing   bool // typing in the search input
	cards     []domain.Card
	cursor    int
	status    searchStatus
	statusMsg string
	width     int
	height    int
}

func newSearchModel(c *client.Client) searchModel {
	return searchModel{client: c, editing: true}
}

func (m searchModel) Init() tea.Cmd {
	return nil
}

func (m searchModel) fetch(query string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		cards, err := c.Search(context.Background(), query)
		return cardsLoadedMsg{cards: cards, err: err}
	}
}

func (m searchModel) Update(msg tea.Msg) (searchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsLoadedMsg:
		if msg.err != nil {
			m.status = statusFailed
			return m, nil
		}
		m.cards = msg.cards
		m.cursor = 0
		m.status = statusLoaded
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.statusMsg = "copied!"
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		if m.editing {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m searchModel) updateInput(msg tea.KeyMsg) (searchModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := strings.TrimSpace(m.query)
		if query == "" {
			// Empty search is a no-op: no request, results unchanged.
			return m, nil
		}
		m.editing = false
		m.status = statusLoading
		return m, m.fetch(query)
	case "esc":
		m.editing = false
		return m, nil
	default:
		m.query = editRune(m.query, msg.String())
		return m, nil
	}
}

func (m searchModel) updateList(msg tea.KeyMsg) (searchModel, tea.Cmd) {
	switch msg.String() {
	case "/", "i":
		m.editing = true
	case "j", "down":
		if m.cursor < len(m.cards)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "o":
		if m.cursor < len(m.cards) {
			if url := m.cards[m.cursor].ImageURL(); url != "" {
				browser.Open(url) //nolint:errcheck // best-effort browser open
			}
		}
	case "c":
		if m.cursor < len(m.cards) {
			url := m.cards[m.cursor].ImageURL()
			if url == "" {
				m.statusMsg = "no image to copy"
				return m, nil
			}
			return m, func() tea.Msg {
				return copyResultMsg{err: clipboard.WriteAll(url)}
			}
		}
	}
	return m, nil
}

// statusLine renders the single status region below the search input.
func (m searchModel) statusLine() string {
	if m.statusMsg != "" {
		return okStyle.Render(m.statusMsg)
	}
	switch m.status {
	case statusLoading:
		return dimStyle.Render(loadingText)
	case statusLoaded:
		return dimStyle.Render(fmt.Sprintf("Loaded %d result(s).", len(m.cards)))
	case statusFailed:
		return errorStyle.Render(fetchFailedText)
	default:
		return metaStyle.Render("type a card name and press enter")
	}
}

func (m searchModel) View() string {
	var b strings.Builder

	// Search input
	prompt := inputPromptStyle.Render(" search> ")
	switch {
	case m.editing:
		cursor := accentStyle.Render("█")
		if m.query == "" {
			b.WriteString(prompt + inputPlaceholderStyle.Render("card name...") + cursor + "\n")
		} else {
			b.WriteString(prompt + normalStyle.Render(m.query) + cursor + "\n")
		}
	case m.query == "":
		b.WriteString(prompt + inputPlaceholderStyle.Render("card name...") + "\n")
	default:
		b.WriteString(prompt + dimStyle.Render(m.query) + "\n")
	}

	b.WriteString(" " + m.statusLine() + "\n\n")

	// Results
	if m.status == statusLoaded && len(m.cards) == 0 {
		b.WriteString(" " + dimStyle.Render("No cards found.") + "\n")
		return b.String()
	}
	for i, card := range m.cards {
		b.WriteString(m.renderCard(i, card))
	}
	return b.String()
}

// renderCard renders one result fragment. Every field falls back on its
// own: a card with no prices still shows its name, and vice versa.
func (m searchModel) renderCard(i int, card domain.Card) string {
	cursor := "  "
	nameStyle := normalStyle
	if i == m.cursor && !m.editing {
		cursor = accentStyle.Render("> ")
		nameStyle = selectedStyle
	}

	title := nameStyle.Render(truncStr(card.DisplayName(), 40)) +
		metaStyle.Render(" — ") + setStyle.Render(truncStr(card.DisplaySet(), 24)) +
		metaStyle.Render(" · ") + RarityStyle(card.Rarity).Render(card.DisplayRarity())

	bucket := card.PriceBucket()
	prices := fmt.Sprintf("    %s %s   %s %s   %s %s",
		metaStyle.Render("market"), marketStyle.Render(domain.FormatPrice(bucket.Market)),
		metaStyle.Render("low"), lowStyle.Render(domain.FormatPrice(bucket.Low)),
		metaStyle.Render("high"), highStyle.Render(domain.FormatPrice(bucket.High)))

	out := cursor + title + "\n" + prices + "\n"
	if url := card.ImageURL(); url != "" {
		out += "    " + urlStyle.Render(truncStr(url, m.maxURLWidth())) + "\n"
	}
	return out + "\n"
}

func (m searchModel) maxURLWidth() int {
	if m.width > 8 {
		return m.width - 8
	}
	return 60
}

func (m searchModel) helpKeys() string {
	if m.editing {
		return helpEntry("enter", "search") + "  " + helpEntry("esc", "browse")
	}
	return helpEntry("j/k", "nav") + "  " + helpEntry("/", "search") + "  " +
		helpEntry("o", "open image") + "  " + helpEntry("c", "copy") + "  " +
		helpEntry("x", "sign out") + "  " + helpEntry("q", "quit")
}
