package search

import (
	"github.com/hsbacot/bookfinder/client"
	"github.com/hsbacot/bookfinder/query"
)

// State is the single search state. Exactly one of Idle, Loading, Failed or
// Loaded is current at any time.
type State interface {
	isState()
}

// Idle is the state before any search has been issued (or after a reset)
type Idle struct{}

// Loading is the state while a request is in flight
type Loading struct {
	Query query.Query
	Seq   uint64
}

// Failed is the terminal state of a search that could not be completed
type Failed struct {
	Query   query.Query
	Message string
}

// Loaded is the terminal state of a successful search.
// An empty result set is a valid Loaded state, distinct from Idle.
type Loaded struct {
	Query    query.Query
	Results  []client.Book
	NumFound int
}

// Empty reports whether the search returned no records
func (l Loaded) Empty() bool {
	return len(l.Results) == 0
}

func (Idle) isState()    {}
func (Loading) isState() {}
func (Failed) isState()  {}
func (Loaded) isState()  {}
