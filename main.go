package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hsbacot/bookfinder/client"
	"github.com/hsbacot/bookfinder/cmd"
	"github.com/hsbacot/bookfinder/config"
	"github.com/hsbacot/bookfinder/query"
	"github.com/hsbacot/bookfinder/tui"
	"github.com/hsbacot/bookfinder/ui"
	"github.com/mattn/go-isatty"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: bookfinder [OPTIONS] [term...]")
	fmt.Fprintln(os.Stderr, "       bookfinder search [OPTIONS] <term...>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -f, --field <title|author|subject>   Initial search field (default: title)")
	fmt.Fprintln(os.Stderr, "  -v, --verbose                        Show detailed logs")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Without a subcommand bookfinder starts the interactive search screen.")
	fmt.Fprintln(os.Stderr, "Run 'bookfinder search -h' for one-shot searches.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintln(os.Stderr, "  bookfinder")
	fmt.Fprintln(os.Stderr, "  bookfinder -f author tolkien")
	fmt.Fprintln(os.Stderr, "  bookfinder search -json dune")
}

func main() {
	// Parse command-line flags
	verbose := flag.Bool("v", false, "verbose mode - show detailed logs")
	flag.BoolVar(verbose, "verbose", false, "verbose mode - show detailed logs")
	fieldFlag := flag.String("f", string(query.Title), "initial search field")
	flag.StringVar(fieldFlag, "field", string(query.Title), "initial search field")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	args := flag.Args()
	terminal := isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())

	if len(args) > 0 && args[0] == "search" {
		logger := ui.InitLogger(os.Stderr, *verbose)
		err := cmd.RunSearchCommand(ctx, args[1:], cmd.Env{
			Stdout:   os.Stdout,
			Stderr:   os.Stderr,
			Config:   cfg,
			Logger:   logger,
			Terminal: terminal,
		})
		if err != nil {
			if !errors.Is(err, cmd.ErrNoResults) {
				logger.Error("Search failed", "error", err)
			}
			os.Exit(1)
		}
		return
	}

	field, err := query.ParseField(*fieldFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		usage()
		os.Exit(1)
	}

	if !terminal {
		fmt.Fprintln(os.Stderr, "Error: the interactive screen needs a terminal")
		fmt.Fprintln(os.Stderr, "")
		usage()
		os.Exit(1)
	}

	// The screen owns stdout, so logs go to a file or nowhere
	var logOutput io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOutput = f
	}
	logger := ui.InitLogger(logOutput, *verbose)
	logger.Debug("Starting interactive search", "field", field, "api", cfg.APIURL)

	model := tui.NewModel(tui.Options{
		Searcher: client.NewClient(cfg.ClientOptions()...),
		Resolver: cfg.CoverResolver(logger),
		Links:    cfg.Links,
		Logger:   logger,
		Field:    field,
		Term:     strings.Join(args, " "),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("Program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
