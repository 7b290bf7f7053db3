// Package navigator implements the interactive side of the navigation panel:
// the categories and items columns, favorites, recently visited items and
// free text search. A Controller holds the state of one visitor and persists
// its lists to a storage.Store on a best-effort basis.
package navigator

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mchmarny/supernav/pkg/menu"
	"github.com/mchmarny/supernav/pkg/storage"
)

// Controller is the state of the navigation panel for a single visitor.
// It is not safe for concurrent use.
type Controller struct {
	menu      []menu.Node
	favorites []Entry
	recents   []Entry

	store  storage.Store
	logger *slog.Logger
	labels Labels
	fold   cases.Caser

	open    bool
	mode    Mode
	query   string
	primary string
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for storage warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithLabels overrides the panel labels.
func WithLabels(l Labels) Option {
	return func(c *Controller) { c.labels = l }
}

// WithMenu sets the initial menu tree.
func WithMenu(nodes []menu.Node) Option {
	return func(c *Controller) { c.menu = nodes }
}

// New creates a controller and loads the visitor lists from store. A nil
// store keeps the lists in memory only.
func New(ctx context.Context, store storage.Store, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		logger: slog.Default(),
		labels: DefaultLabels(),
		fold:   cases.Lower(language.Und),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.favorites = c.load(ctx, FavoritesKey)
	c.recents = c.load(ctx, RecentKey)
	c.selectDefault()

	return c
}

// Labels returns the panel labels.
func (c *Controller) Labels() Labels {
	return c.labels
}

// Menu returns the menu tree.
func (c *Controller) Menu() []menu.Node {
	return c.menu
}

// UpdateMenuData replaces the menu tree.
func (c *Controller) UpdateMenuData(nodes []menu.Node) {
	c.menu = nodes
	c.selectDefault()
}

func (c *Controller) selectDefault() {
	if len(c.menu) > 0 {
		c.primary = FavoritesID
	}
}

// Open shows the panel.
func (c *Controller) Open() {
	c.open = true
}

// Close hides the panel and clears the search.
func (c *Controller) Close() {
	c.open = false
	c.ClearSearch()
}

// IsOpen returns true when the panel is shown.
func (c *Controller) IsOpen() bool {
	return c.open
}

// HandleKey processes a key press. Escape closes an open panel.
func (c *Controller) HandleKey(key string) {
	if key == "Escape" && c.open {
		c.Close()
	}
}

// ClickOverlay processes a click on the overlay. Clicks outside the panel
// body close it.
func (c *Controller) ClickOverlay(insidePanel bool) {
	if !insidePanel {
		c.Close()
	}
}

// Mode returns the browsing or searching state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Query returns the active search query.
func (c *Controller) Query() string {
	return c.query
}

// Primary returns the id of the selected primary entry.
func (c *Controller) Primary() string {
	return c.primary
}

// PrimaryEntries returns the categories column: Favorites and Recent
// followed by the top-level menu items.
func (c *Controller) PrimaryEntries() []PrimaryEntry {
	entries := make([]PrimaryEntry, 0, len(c.menu)+2)
	entries = append(entries,
		c.synthetic(FavoritesID, c.labels.Favorites, c.labels.FavoritesDescription, "fas fa-star"),
		c.synthetic(RecentID, c.labels.Recent, c.labels.RecentDescription, "fas fa-clock"),
	)

	for _, n := range c.menu {
		entries = append(entries, PrimaryEntry{Node: n, Selected: n.ID == c.primary})
	}

	return entries
}

func (c *Controller) synthetic(id, title, description, icon string) PrimaryEntry {
	return PrimaryEntry{
		Node: menu.Node{
			ID:          id,
			Title:       title,
			Description: &description,
			Icon:        &icon,
			Children:    []menu.Node{},
		},
		Synthetic: true,
		Selected:  c.primary == id,
	}
}

// SelectPrimary selects a primary entry and returns the secondary view.
// Unknown ids leave the selection unchanged.
func (c *Controller) SelectPrimary(id string) SecondaryView {
	switch id {
	case FavoritesID, RecentID:
		c.primary = id
	default:
		if c.category(id) != nil {
			c.primary = id
		}
	}
	return c.Secondary()
}

func (c *Controller) category(id string) *menu.Node {
	for idx := range c.menu {
		if c.menu[idx].ID == id {
			return &c.menu[idx]
		}
	}
	return nil
}

// Secondary returns the content of the secondary column for the current selection.
func (c *Controller) Secondary() SecondaryView {
	switch c.primary {
	case FavoritesID:
		return c.listView(ListFavorites, c.labels.Favorites, c.favorites, c.labels.EmptyFavorites)
	case RecentID:
		return c.listView(ListRecent, c.labels.Recent, c.recents, c.labels.EmptyRecent)
	}

	parent := c.category(c.primary)
	if parent == nil {
		return SecondaryView{Title: c.labels.SelectCategory, Items: []ListEntry{}}
	}

	view := SecondaryView{
		Title: parent.Title,
		Items: make([]ListEntry, 0, len(parent.Children)),
	}
	for _, child := range parent.Children {
		view.Items = append(view.Items, ListEntry{
			Entry:     NewEntry(child, parent),
			ParentID:  parent.ID,
			Favorited: c.IsFavorite(child.ID),
		})
	}
	if len(view.Items) == 0 {
		view.Empty = c.labels.EmptyCategory
	}
	return view
}

func (c *Controller) listView(list List, title string, entries []Entry, empty string) SecondaryView {
	view := SecondaryView{
		Title: title,
		List:  list,
		Items: make([]ListEntry, 0, len(entries)),
	}
	for _, e := range entries {
		view.Items = append(view.Items, ListEntry{Entry: e, Removable: true})
	}
	if len(view.Items) == 0 {
		view.Empty = empty
	}
	return view
}

// Favorites returns a copy of the favorites list.
func (c *Controller) Favorites() []Entry {
	return slices.Clone(c.favorites)
}

// Recents returns a copy of the recently visited list, most recent first.
func (c *Controller) Recents() []Entry {
	return slices.Clone(c.recents)
}

// IsFavorite returns true when an entry with id is a favorite.
func (c *Controller) IsFavorite(id string) bool {
	return indexOf(c.favorites, id) >= 0
}

// ToggleFavorite adds e to favorites, stamping the parent title when parent
// is set, or removes it when already present. It returns the new membership.
func (c *Controller) ToggleFavorite(ctx context.Context, e Entry, parent *menu.Node) bool {
	favorited := true
	if idx := indexOf(c.favorites, e.ID); idx >= 0 {
		c.favorites = slices.Delete(c.favorites, idx, idx+1)
		favorited = false
	} else {
		if parent != nil {
			e.ParentTitle = parent.Title
		}
		c.favorites = append(c.favorites, e)
	}

	c.save(ctx, FavoritesKey, c.favorites)
	return favorited
}

// Remove deletes the entry with id from list. It returns false when the
// entry was not listed.
func (c *Controller) Remove(ctx context.Context, list List, id string) bool {
	switch list {
	case ListFavorites:
		idx := indexOf(c.favorites, id)
		if idx < 0 {
			return false
		}
		c.favorites = slices.Delete(c.favorites, idx, idx+1)
		c.save(ctx, FavoritesKey, c.favorites)
	case ListRecent:
		idx := indexOf(c.recents, id)
		if idx < 0 {
			return false
		}
		c.recents = slices.Delete(c.recents, idx, idx+1)
		c.save(ctx, RecentKey, c.recents)
	default:
		return false
	}
	return true
}

// Navigate records a visit to e and closes the panel. Entries without a URL
// are ignored. It returns the URL to navigate to.
func (c *Controller) Navigate(ctx context.Context, e Entry, parent *menu.Node) (string, bool) {
	if !e.HasURL() {
		return "", false
	}

	c.pushRecent(ctx, e, parent)
	c.Close()

	return e.Link(), true
}

func (c *Controller) pushRecent(ctx context.Context, e Entry, parent *menu.Node) {
	if idx := indexOf(c.recents, e.ID); idx >= 0 {
		c.recents = slices.Delete(c.recents, idx, idx+1)
	}

	if parent != nil {
		e.ParentTitle = parent.Title
	}
	c.recents = slices.Insert(c.recents, 0, e)

	if len(c.recents) > MaxRecent {
		c.recents = c.recents[:MaxRecent]
	}

	c.save(ctx, RecentKey, c.recents)
}

// Lookup finds an entry by id in the menu categories, then favorites, then
// recents. Category hits return their parent.
func (c *Controller) Lookup(id string) (Entry, *menu.Node, bool) {
	if n, parent := menu.Find(c.menu, id); n != nil {
		return NewEntry(*n, parent), parent, true
	}
	if idx := indexOf(c.favorites, id); idx >= 0 {
		return c.favorites[idx], nil, true
	}
	if idx := indexOf(c.recents, id); idx >= 0 {
		return c.recents[idx], nil, true
	}
	return Entry{}, nil, false
}

// Search switches to searching mode and returns the entries whose title or
// description contains query, ignoring case. Favorites come first, then
// recents, then the children of every category; an id is listed once, from
// the first source that matches. Top-level items are not searched. A blank
// query clears the search.
func (c *Controller) Search(query string) []Result {
	if strings.TrimSpace(query) == "" {
		c.ClearSearch()
		return nil
	}

	c.mode = Searching
	c.query = query
	term := c.fold.String(query)

	results := []Result{}
	seen := make(map[string]struct{})
	add := func(e Entry, breadcrumb string, parent *menu.Node) {
		if _, ok := seen[e.ID]; ok || !c.matches(e.Node, term) {
			return
		}
		seen[e.ID] = struct{}{}
		results = append(results, Result{Entry: e, Breadcrumb: breadcrumb, Parent: parent})
	}

	for _, e := range c.favorites {
		add(e, c.labels.Favorites, nil)
	}
	for _, e := range c.recents {
		add(e, c.labels.Recent, nil)
	}
	for idx := range c.menu {
		parent := &c.menu[idx]
		for _, child := range parent.Children {
			add(NewEntry(child, parent), parent.Title, parent)
		}
	}

	return results
}

func (c *Controller) matches(n menu.Node, term string) bool {
	return strings.Contains(c.fold.String(n.Title), term) ||
		strings.Contains(c.fold.String(n.DescriptionText()), term)
}

// ClearSearch returns to browsing mode. The primary selection is kept.
func (c *Controller) ClearSearch() {
	c.mode = Browsing
	c.query = ""
}

func (c *Controller) load(ctx context.Context, key string) []Entry {
	entries := []Entry{}
	if c.store == nil {
		return entries
	}

	b, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Debug("could not read visitor list", "key", key, "error", err)
		return entries
	}
	if len(b) == 0 {
		return entries
	}

	if err := json.Unmarshal(b, &entries); err != nil {
		c.logger.Debug("discarding unreadable visitor list", "key", key, "error", err)
		return []Entry{}
	}
	if entries == nil {
		return []Entry{}
	}

	return entries
}

func (c *Controller) save(ctx context.Context, key string, entries []Entry) {
	if c.store == nil {
		return
	}

	b, err := json.Marshal(entries)
	if err != nil {
		c.logger.Warn("could not encode visitor list", "key", key, "error", err)
		return
	}

	if err := c.store.Set(ctx, key, b); err != nil {
		c.logger.Warn("could not save visitor list", "key", key, "error", err)
	}
}

func indexOf(entries []Entry, id string) int {
	return slices.IndexFunc(entries, func(e Entry) bool { return e.ID == id })
}
