package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hsbacot/bookfinder/client"
	"github.com/hsbacot/bookfinder/config"
	"github.com/hsbacot/bookfinder/cover"
	"github.com/hsbacot/bookfinder/query"
	"github.com/hsbacot/bookfinder/render"
	"github.com/hsbacot/bookfinder/search"
	"github.com/hsbacot/bookfinder/ui"
)

var (
	// ErrNoResults is returned when a search succeeds but finds nothing
	ErrNoResults = errors.New("no books found")
	// ErrUsage is returned for invalid command-line input
	ErrUsage = errors.New("invalid usage")
)

// Env carries what a command needs from the process
type Env struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Config   config.Config
	Logger   *log.Logger
	Searcher search.Searcher
	// Terminal is true when stdin/stdout are attached to a terminal, which
	// enables interactive prompts
	Terminal bool

	// prompt and selection hooks, replaced in tests
	promptQuery func(query.Field) (query.Query, error)
	selectBook  func([]render.Card) (*render.Card, error)
}

// PrintSearchUsage prints the search command help
func PrintSearchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bookfinder search [OPTIONS] <term...>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -field <title|author|subject>   Field to search (default: title)")
	fmt.Fprintln(w, "  -json                           Print result cards as JSON")
	fmt.Fprintln(w, "  -covers                         Check cover images, falling back to the placeholder")
	fmt.Fprintln(w, "  -i                              Pick one book and print its details")
	fmt.Fprintln(w, "  -width <N>                      Layout width for the card grid (default: 120)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, "  bookfinder search dune")
	fmt.Fprintln(w, "  bookfinder search -field author ursula le guin")
}

// RunSearchCommand runs one search and prints the resulting view
func RunSearchCommand(ctx context.Context, args []string, env Env) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { PrintSearchUsage(env.Stderr) }
	fieldFlag := fs.String("field", string(query.Title), "Field to search")
	jsonOutput := fs.Bool("json", false, "Output in JSON format")
	checkCovers := fs.Bool("covers", false, "Check cover images")
	interactive := fs.Bool("i", false, "Pick one book interactively")
	width := fs.Int("width", 120, "Layout width")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	field, err := query.ParseField(*fieldFlag)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	term := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(term) == "" {
		if !env.Terminal {
			PrintSearchUsage(env.Stderr)
			return fmt.Errorf("%w: search term required", ErrUsage)
		}
		q, err := env.prompt()(field)
		if err != nil {
			return fmt.Errorf("prompt cancelled: %w", err)
		}
		term, field = q.Term, q.Field
	}

	searcher := env.Searcher
	if searcher == nil {
		searcher = client.NewClient(env.Config.ClientOptions()...)
	}
	controller := search.NewController(searcher, env.Logger)

	env.Logger.Info("Searching Open Library", "query", term, "field", field)
	state, ok := controller.Search(ctx, term, field)
	if !ok {
		return fmt.Errorf("%w: search term required", ErrUsage)
	}

	switch st := state.(type) {
	case search.Failed:
		fmt.Fprintln(env.Stderr, render.Error(st.Message))
		return errors.New(st.Message)
	case search.Loaded:
		if st.Empty() {
			env.Logger.Warn("No books found", "query", term, "field", field)
			fmt.Fprintln(env.Stderr, render.Empty())
			return ErrNoResults
		}
		env.Logger.Debug("Search completed", "results", len(st.Results), "num_found", st.NumFound)
		return printResults(ctx, env, st, *jsonOutput, *checkCovers, *interactive, *width)
	}

	return fmt.Errorf("unexpected search state %T", state)
}

func printResults(ctx context.Context, env Env, loaded search.Loaded, jsonOutput, checkCovers, interactive bool, width int) error {
	cards := render.NewCards(loaded.Results, env.Config.Links)

	if checkCovers {
		resolver := env.Config.CoverResolver(env.Logger)
		images := make([]cover.Image, len(cards))
		for i, c := range cards {
			images[i] = c.Cover
		}
		for i, img := range resolver.ResolveAll(ctx, images) {
			cards[i].Cover = img
		}
	}

	if interactive {
		selected, err := env.selector()(cards)
		if err != nil {
			return fmt.Errorf("selection failed: %w", err)
		}
		env.Logger.Info("Selected book", "title", selected.Title, "key", selected.Key)
		if jsonOutput {
			return printJSON(env.Stdout, selected)
		}
		fmt.Fprintln(env.Stdout, render.Detail(*selected))
		return nil
	}

	if jsonOutput {
		return printJSON(env.Stdout, map[string]interface{}{
			"query":     loaded.Query.Term,
			"field":     loaded.Query.Field,
			"num_found": loaded.NumFound,
			"books":     cards,
		})
	}

	printHeader(env.Stdout, fmt.Sprintf("Books matching %s %q", loaded.Query.Field, loaded.Query.Term))
	fmt.Fprintln(env.Stdout, render.Badge(loaded))
	fmt.Fprintln(env.Stdout, render.Grid(cards, width, -1))
	return nil
}

func (e Env) prompt() func(query.Field) (query.Query, error) {
	if e.promptQuery != nil {
		return e.promptQuery
	}
	return ui.PromptQuery
}

func (e Env) selector() func([]render.Card) (*render.Card, error) {
	if e.selectBook != nil {
		return e.selectBook
	}
	return ui.SelectBook
}
