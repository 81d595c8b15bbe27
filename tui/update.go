package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hsbacot/bookfinder/cover"
	"github.com/hsbacot/bookfinder/query"
	"github.com/hsbacot/bookfinder/render"
	"github.com/hsbacot/bookfinder/search"
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, textinputBlink()}
	if req, ok := m.controller.Begin(m.opts.Term, m.field); ok {
		cmds = append(cmds, m.runSearch(req))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and state transitions
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateResults(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchCompleteMsg:
		if !m.controller.Complete(msg.outcome) {
			return m, nil
		}
		m.cards = nil
		m.selected = -1
		if loaded, ok := m.controller.State().(search.Loaded); ok && !loaded.Empty() {
			m.cards = render.NewCards(loaded.Results, m.opts.Links)
			m.cardsSeq = msg.outcome.Request.Seq
			m.selected = 0
			return m, m.resolveCovers(m.cardsSeq, m.cards)
		}
		return m, nil

	case coversResolvedMsg:
		// covers for an older result set
		if msg.seq != m.cardsSeq || len(msg.images) != len(m.cards) {
			return m, nil
		}
		for i := range m.cards {
			m.cards[i].Cover = msg.images[i]
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.logger.Warn("Copy failed", "error", msg.err)
			m.status = fmt.Sprintf("Could not copy %s: %v", msg.label, msg.err)
		} else {
			m.status = fmt.Sprintf("Copied %s", msg.label)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit(m.input.Value(), m.field)
	case key.Matches(msg, m.keys.NextField):
		m = m.nextField()
		return m, nil
	case key.Matches(msg, m.keys.Blur):
		m.focus = focusResults
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := render.ViewFor(m.controller.State())

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Blur):
		m.focus = focusInput
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.NextField):
		m = m.nextField()
		return m, nil
	case key.Matches(msg, m.keys.Reset) && view != render.ViewIdle:
		return m.reset()
	case key.Matches(msg, m.keys.Bestsellers) && view == render.ViewEmpty:
		return m.submit(search.Bestsellers.Term, search.Bestsellers.Field)
	}

	if view != render.ViewGrid {
		return m, nil
	}

	cols := render.Columns(m.width)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.selected = max(m.selected-cols, 0)
	case key.Matches(msg, m.keys.Down):
		m.selected = min(m.selected+cols, len(m.cards)-1)
	case key.Matches(msg, m.keys.Left):
		m.selected = max(m.selected-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.selected = min(m.selected+1, len(m.cards)-1)
	case key.Matches(msg, m.keys.CopyDetail):
		if card, ok := m.selectedCard(); ok {
			return m, m.copy("Open Library link", card.DetailURL)
		}
	case key.Matches(msg, m.keys.CopyStore):
		if card, ok := m.selectedCard(); ok {
			if card.StoreURL == "" {
				m.status = "No ISBN for this book"
				return m, nil
			}
			return m, m.copy("Amazon link", card.StoreURL)
		}
	}
	return m, nil
}

// submit starts a search unless one is already running or the term is blank
func (m Model) submit(term string, field query.Field) (tea.Model, tea.Cmd) {
	if _, loading := m.controller.State().(search.Loading); loading {
		return m, nil
	}

	req, ok := m.controller.Begin(term, field)
	if !ok {
		return m, nil
	}

	m.logger.Info("Searching Open Library", "query", term, "field", field, "request_id", req.ID)
	m.cards = nil
	m.selected = -1
	m.status = ""
	m.focus = focusResults
	m.input.Blur()
	return m, m.runSearch(req)
}

// reset returns to the initial screen, like reloading the app
func (m Model) reset() (tea.Model, tea.Cmd) {
	m.controller.Reset()

	opts := m.opts
	opts.Term = ""
	opts.Field = query.Title

	fresh := newModel(opts, m.controller)
	fresh.width = m.width
	fresh.help.Width = m.help.Width
	return fresh, textinputBlink()
}

func (m Model) nextField() Model {
	m.field = m.field.Next()
	m.input.Placeholder = m.placeholder()
	return m
}

func (m Model) selectedCard() (render.Card, bool) {
	if m.selected < 0 || m.selected >= len(m.cards) {
		return render.Card{}, false
	}
	return m.cards[m.selected], true
}

// Command functions (run async)

func (m Model) runSearch(req search.Request) tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		return searchCompleteMsg{outcome: controller.Execute(context.Background(), req)}
	}
}

func (m Model) resolveCovers(seq uint64, cards []render.Card) tea.Cmd {
	if m.opts.Resolver == nil {
		return nil
	}

	images := make([]cover.Image, len(cards))
	for i, c := range cards {
		images[i] = c.Cover
	}
	resolver := m.opts.Resolver
	return func() tea.Msg {
		return coversResolvedMsg{seq: seq, images: resolver.ResolveAll(context.Background(), images)}
	}
}

func (m Model) copy(label, text string) tea.Cmd {
	write := m.opts.Clipboard
	return func() tea.Msg {
		return clipboardMsg{label: label, err: write(text)}
	}
}
