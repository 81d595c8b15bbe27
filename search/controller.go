package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hsbacot/bookfinder/client"
	"github.com/hsbacot/bookfinder/query"
)

const (
	FetchFailedMessage = "Failed to fetch books. Please try again later."
	GenericMessage     = "An error occurred while searching for books."
)

// Bestsellers is the fallback query offered when a search comes back empty
var Bestsellers = query.Query{Term: "best sellers", Field: query.Title}

// Searcher performs one search request
type Searcher interface {
	Search(ctx context.Context, d query.Descriptor) (*client.SearchResponse, error)
}

// Request is a search that has entered Loading and still needs executing
type Request struct {
	Seq        uint64
	ID         string
	Descriptor query.Descriptor
}

// Outcome is the result of executing a Request
type Outcome struct {
	Request  Request
	Response *client.SearchResponse
	Err      error
}

// Controller drives the search state machine. Only the most recently begun
// request is allowed to complete; older outcomes are dropped.
type Controller struct {
	searcher Searcher
	logger   *log.Logger

	mu    sync.Mutex
	seq   uint64
	state State
}

// NewController creates a controller in the Idle state
func NewController(searcher Searcher, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		searcher: searcher,
		logger:   logger,
		state:    Idle{},
	}
}

// State returns the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Begin moves to Loading for a new search. It returns false and leaves the
// state untouched when the term is blank.
func (c *Controller) Begin(term string, field query.Field) (Request, bool) {
	d, ok := query.Build(term, field)
	if !ok {
		c.logger.Debug("Ignoring empty search", "field", field)
		return Request{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	req := Request{
		Seq:        c.seq,
		ID:         uuid.NewString(),
		Descriptor: d,
	}
	c.state = Loading{Query: d.Query, Seq: req.Seq}

	c.logger.Debug("Search started", "query", term, "field", field, "request_id", req.ID, "seq", req.Seq)
	return req, true
}

// Execute performs the network call for req. It never touches the state, so it
// is safe to run off the UI goroutine.
func (c *Controller) Execute(ctx context.Context, req Request) (out Outcome) {
	out.Request = req
	defer func() {
		if r := recover(); r != nil {
			out.Response = nil
			out.Err = fmt.Errorf("search aborted: %v", r)
		}
	}()

	out.Response, out.Err = c.searcher.Search(ctx, req.Descriptor)
	return out
}

// Complete applies an outcome. It returns false when the outcome is stale,
// i.e. a newer search was begun, the controller was reset, or the outcome was
// already applied.
func (c *Controller) Complete(out Outcome) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	loading, ok := c.state.(Loading)
	if !ok || loading.Seq != out.Request.Seq {
		c.logger.Debug("Dropping stale search result", "request_id", out.Request.ID, "seq", out.Request.Seq, "latest", c.seq)
		return false
	}

	q := out.Request.Descriptor.Query
	if out.Err != nil {
		c.logger.Error("Search failed", "query", q.Term, "field", q.Field, "request_id", out.Request.ID, "error", out.Err)
		c.state = Failed{Query: q, Message: failureMessage(out.Err)}
		return true
	}

	var loaded Loaded
	loaded.Query = q
	loaded.Results = []client.Book{}
	if out.Response != nil {
		loaded.NumFound = out.Response.NumFound
		if out.Response.Docs != nil {
			loaded.Results = out.Response.Docs
		}
	}
	c.state = loaded

	c.logger.Debug("Search completed", "query", q.Term, "field", q.Field, "request_id", out.Request.ID, "results", len(loaded.Results))
	return true
}

// Search runs a full search synchronously and returns the resulting state.
// ok is false when the term was blank and nothing happened.
func (c *Controller) Search(ctx context.Context, term string, field query.Field) (State, bool) {
	req, ok := c.Begin(term, field)
	if !ok {
		return c.State(), false
	}
	c.Complete(c.Execute(ctx, req))
	return c.State(), true
}

// Reset returns to Idle. Any search still in flight will be dropped when it completes.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.state = Idle{}
}

func failureMessage(err error) string {
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		return FetchFailedMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return GenericMessage
}
