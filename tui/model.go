package tui

import (
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/hsbacot/bookfinder/cover"
	"github.com/hsbacot/bookfinder/query"
	"github.com/hsbacot/bookfinder/render"
	"github.com/hsbacot/bookfinder/search"
)

type focus int

const (
	focusInput focus = iota
	focusResults
)

// Options contains configuration for the Model
type Options struct {
	Searcher search.Searcher
	// Resolver probes cover images after each search; nil skips probing
	Resolver *cover.Resolver
	Links    render.Links
	Logger   *log.Logger
	// Field is the initially selected search field
	Field query.Field
	// Term, when set, is searched as soon as the program starts
	Term string
	// Clipboard copies text; defaults to the system clipboard
	Clipboard func(string) error
}

// Model is the Bubble Tea model for bookfinder
type Model struct {
	opts       Options
	controller *search.Controller

	// Search bar
	input textinput.Model
	field query.Field
	focus focus

	// Results
	cards    []render.Card
	cardsSeq uint64
	selected int
	status   string

	// UI Components
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	width   int
	logger  *log.Logger
}

// NewModel creates a new Bubble Tea model in its initial state
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Links == (render.Links{}) {
		opts.Links = render.DefaultLinks()
	}
	return newModel(opts, search.NewController(opts.Searcher, opts.Logger))
}

// newModel builds a fresh model around an existing controller, so a reset
// keeps the request sequence and drops anything still in flight.
func newModel(opts Options, controller *search.Controller) Model {
	field := opts.Field
	if !field.Valid() {
		field = query.Title
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.Prompt = "🔎 "
	ti.CharLimit = 200
	ti.Width = 40
	ti.SetValue(opts.Term)
	ti.Focus()

	m := Model{
		opts:       opts,
		controller: controller,
		input:      ti,
		field:      field,
		focus:      focusInput,
		selected:   -1,
		spinner:    s,
		help:       help.New(),
		keys:       defaultKeyMap(),
		logger:     opts.Logger,
	}
	m.input.Placeholder = m.placeholder()
	if strings.TrimSpace(opts.Term) != "" {
		m.focus = focusResults
		m.input.Blur()
	}
	return m
}

// State returns the current search state
func (m Model) State() search.State {
	return m.controller.State()
}

// Cards returns the cards of the current result set
func (m Model) Cards() []render.Card {
	return m.cards
}

// Field returns the selected search field
func (m Model) Field() query.Field {
	return m.field
}

func (m Model) placeholder() string {
	return "Search by " + string(m.field) + "..."
}
