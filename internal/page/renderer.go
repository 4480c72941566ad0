package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/query_page.html
var templates embed.FS

const (
	defaultTitle          = "Team UI"
	defaultRefreshSeconds = 1
	QueryAction           = "/query"
)

type view struct {
	Title          string
	Action         string
	RefreshSeconds int
	Loading        bool
	Input          string
	Cards          []Card
}

type Renderer struct {
	tpl            *template.Template
	title          string
	refreshSeconds int
}

func NewRenderer() (*Renderer, error) {
	tpl, err := template.ParseFS(templates, "templates/query_page.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return &Renderer{tpl: tpl, title: defaultTitle, refreshSeconds: defaultRefreshSeconds}, nil
}

func (r *Renderer) SetTitle(title string) {
	if title != "" {
		r.title = title
	}
}

func (r *Renderer) SetRefreshInterval(seconds int) {
	if seconds > 0 {
		r.refreshSeconds = seconds
	}
}

// Render writes the page for the given state. While loading only the placeholder is
// drawn; otherwise one card per candidate in list order.
func (r *Renderer) Render(w io.Writer, state State) error {
	data := view{
		Title:          r.title,
		Action:         QueryAction,
		RefreshSeconds: r.refreshSeconds,
		Loading:        state.IsLoading(),
		Input:          state.Input,
	}
	if !data.Loading {
		data.Cards = NewCards(state.Candidates)
	}

	buf := new(bytes.Buffer)
	if err := r.tpl.Execute(buf, data); err != nil {
		return fmt.Errorf("failed to execute page template: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
