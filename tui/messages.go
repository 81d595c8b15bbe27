package tui

import (
	"github.com/hsbacot/bookfinder/cover"
	"github.com/hsbacot/bookfinder/search"
)

// Message types for Bubble Tea state transitions

type searchCompleteMsg struct {
	outcome search.Outcome
}

type coversResolvedMsg struct {
	seq    uint64
	images []cover.Image
}

type clipboardMsg struct {
	label string
	err   error
}
