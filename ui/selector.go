package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hsbacot/bookfinder/query"
	"github.com/hsbacot/bookfinder/render"
)

// SelectBook presents an interactive selection menu for choosing one card
func SelectBook(cards []render.Card) (*render.Card, error) {
	if len(cards) == 0 {
		return nil, errors.New("no books to select from")
	}

	var selected int
	options := make([]huh.Option[int], len(cards))

	for i, c := range cards {
		label := fmt.Sprintf("%s - %s (%s)", c.Title, c.Authors, c.Year)
		if c.Rating != "N/A" {
			label = fmt.Sprintf("%s ★ %s", label, c.Rating)
		}
		options[i] = huh.NewOption(label, i)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(fmt.Sprintf("%d books found - choose one:", len(cards))).
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	if selected < 0 || selected >= len(cards) {
		return nil, errors.New("selection not found")
	}
	return &cards[selected], nil
}

// PromptQuery asks for a search term and field. field is the preselected choice.
func PromptQuery(field query.Field) (query.Query, error) {
	var term string
	if !field.Valid() {
		field = query.Title
	}

	options := make([]huh.Option[query.Field], len(query.Fields))
	for i, f := range query.Fields {
		options[i] = huh.NewOption(f.Label(), f)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[query.Field]().
				Title("Search by").
				Options(options...).
				Value(&field),
			huh.NewInput().
				Title("Search for books").
				Placeholder("e.g. dune").
				Value(&term).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("enter something to search for")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return query.Query{}, err
	}

	return query.Query{Term: term, Field: field}, nil
}
