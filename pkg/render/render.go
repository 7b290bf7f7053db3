// Package render emits the markup fragments of the navigation panel: the
// trigger button, the overlay with both columns and search results, and the
// script tag embedding the serialized menu tree. Fragments are templ
// components backed by html/template.
package render

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/mchmarny/supernav/pkg/menu"
	"github.com/mchmarny/supernav/pkg/navigator"
)

const (
	itemClass     = "super-menu-item"
	resultClass   = "super-search-result-item"
	activeClass   = "super-menu-item-active"
	favoriteClass = "super-favorite-btn"
	removeClass   = "super-remove-btn"
)

// Panel is everything needed to render the navigation for one request.
type Panel struct {
	Options    Options
	Config     *menu.Configuration
	Controller *navigator.Controller
	CurrentURL string
	// Results are the search hits shown when the controller is searching.
	Results []navigator.Result
}

type action struct {
	Class  string
	Title  string
	Icon   string
	Method string
	Href   string
}

type row struct {
	ID          string
	ParentID    string
	Class       string
	Href        string
	Icon        string
	Title       string
	Description string
	Breadcrumb  string
	Action      *action
}

type resultsView struct {
	Active bool
	Header string
	Empty  string
	Rows   []row
}

type buttonView struct {
	Options
	Href string
}

type overlayView struct {
	Open            bool
	Title           string
	CloseHref       string
	ClearHref       string
	Placeholder     string
	Query           string
	SearchPath      string
	Searching       bool
	CategoriesTitle string
	Primary         []row
	SecondaryTitle  string
	Secondary       []row
	SecondaryEmpty  string
	Results         resultsView
}

type navigationView struct {
	Button  buttonView
	Overlay overlayView
}

type pageView struct {
	PageTitle  string
	CurrentURL string
	Options    Options
	Navigation *navigationView
	Menu       []menu.Node
}

func component(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return templates.ExecuteTemplate(w, name, data)
	})
}

// Button renders the control that opens the panel.
func Button(opts Options) templ.Component {
	return component("button", button(opts))
}

func button(opts Options) buttonView {
	return buttonView{
		Options: opts.Merge(),
		Href:    "?" + url.Values{"primary": {navigator.FavoritesID}}.Encode(),
	}
}

// Overlay renders the panel with both columns and the search results.
func Overlay(p Panel) templ.Component {
	return component("overlay", p.overlay())
}

// SearchResults renders the search results block.
func SearchResults(p Panel) templ.Component {
	return component("results", p.results())
}

// Navigation renders the button and the overlay. It renders nothing when
// there is no menu.
func Navigation(p Panel) templ.Component {
	if p.Config == nil || p.Config.Empty() {
		return templ.NopComponent
	}
	return component("navigation", p.navigation())
}

// Script renders a script tag handing the serialized tree to the client.
func Script(nodes []menu.Node) templ.Component {
	if nodes == nil {
		nodes = []menu.Node{}
	}
	return component("script", nodes)
}

// Stylesheet renders the stylesheet link.
func Stylesheet(href string) templ.Component {
	return component("stylesheet", href)
}

// Page renders a complete document for the current URL with the navigation
// embedded.
func Page(title string, p Panel) templ.Component {
	view := pageView{
		PageTitle:  title,
		CurrentURL: p.CurrentURL,
		Options:    p.Options.Merge(),
		Menu:       []menu.Node{},
	}
	if p.Config != nil && !p.Config.Empty() {
		nav := p.navigation()
		view.Navigation = &nav
		view.Menu = p.Config.Nodes()
	}
	return component("page", view)
}

func (p Panel) navigation() navigationView {
	return navigationView{Button: button(p.Options), Overlay: p.overlay()}
}

func (p Panel) overlay() overlayView {
	opts := p.Options.Merge()
	v := overlayView{
		Title:           opts.Title,
		CloseHref:       p.closeHref(),
		ClearHref:       p.closeHref(),
		Placeholder:     opts.SearchPlaceholder,
		SearchPath:      opts.SearchPath,
		CategoriesTitle: opts.CategoriesTitle,
		Results:         p.results(),
	}

	if p.Controller == nil {
		return v
	}

	c := p.Controller
	v.Open = c.IsOpen()
	v.Searching = c.Mode() == navigator.Searching
	v.Query = c.Query()
	v.ClearHref = p.closeHref() + "?" + url.Values{"primary": {c.Primary()}}.Encode()

	for _, e := range c.PrimaryEntries() {
		class := itemClass
		if e.Selected {
			class += " " + activeClass
		}
		if hl := p.highlight(e); hl != "" {
			class += " " + hl
		}
		v.Primary = append(v.Primary, row{
			ID:          e.ID,
			Class:       class,
			Href:        "?" + url.Values{"primary": {e.ID}}.Encode(),
			Icon:        e.IconClass(opts.DefaultIcon),
			Title:       e.Title,
			Description: e.DescriptionText(),
		})
	}

	secondary := c.Secondary()
	state := p.actionState(c.Primary())
	v.SecondaryTitle = strings.ToUpper(secondary.Title)
	v.SecondaryEmpty = secondary.Empty
	for _, e := range secondary.Items {
		r := p.entryRow(opts, e.Entry, itemClass)
		r.ParentID = e.ParentID
		switch {
		case e.Removable:
			r.Action = &action{
				Class:  removeClass,
				Title:  strings.ReplaceAll(opts.RemoveFromList, "%s", strings.ToLower(secondary.Title)),
				Icon:   "fas fa-times",
				Method: http.MethodDelete,
				Href:   opts.ActionPath + string(secondary.List) + "/" + url.PathEscape(e.ID) + state,
			}
		default:
			a := &action{
				Class:  favoriteClass,
				Title:  opts.AddFavorite,
				Icon:   "fas fa-star",
				Method: http.MethodPost,
				Href:   opts.ActionPath + navigator.FavoritesID + "/" + url.PathEscape(e.ID) + state,
			}
			if e.Favorited {
				a.Class += " favorited"
				a.Title = opts.RemoveFavorite
			}
			r.Action = a
		}
		v.Secondary = append(v.Secondary, r)
	}

	return v
}

// closeHref is the current page without panel state.
func (p Panel) closeHref() string {
	if p.CurrentURL == "" {
		return "/"
	}
	return p.CurrentURL
}

// actionState is the query string carrying the panel state to action
// endpoints so the patched overlay matches the one on screen.
func (p Panel) actionState(primary string) string {
	q := url.Values{}
	if primary != "" {
		q.Set("primary", primary)
	}
	if p.CurrentURL != "" {
		q.Set("url", p.CurrentURL)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// highlight returns the configured selected class for top-level items that
// match the current URL.
func (p Panel) highlight(e navigator.PrimaryEntry) string {
	if e.Synthetic || p.Config == nil || p.CurrentURL == "" {
		return ""
	}
	item, parent := p.Config.Find(e.ID)
	if item == nil || parent != nil {
		return ""
	}
	return p.Config.SelectedClassFor(item, p.CurrentURL)
}

func (p Panel) results() resultsView {
	opts := p.Options.Merge()
	v := resultsView{Header: opts.ResultsTitle}

	if p.Controller == nil || p.Controller.Mode() != navigator.Searching {
		return v
	}

	q := p.Controller.Query()
	v.Active = true
	v.Header = opts.resultsHeader(q)
	v.Empty = opts.noResults(q)
	for _, res := range p.Results {
		r := p.entryRow(opts, res.Entry, resultClass)
		r.Breadcrumb = res.Breadcrumb
		v.Rows = append(v.Rows, r)
	}
	return v
}

func (p Panel) entryRow(opts Options, e navigator.Entry, class string) row {
	return row{
		ID:          e.ID,
		Class:       class,
		Href:        opts.NavigatePath + url.PathEscape(e.ID),
		Icon:        e.IconClass(opts.DefaultIcon),
		Title:       e.Title,
		Description: e.DescriptionText(),
	}
}
