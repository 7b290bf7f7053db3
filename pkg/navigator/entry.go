package navigator

import (
	"github.com/mchmarny/supernav/pkg/menu"
)

const (
	// FavoritesID is the primary entry listing favorites.
	FavoritesID = "favorites"

	// RecentID is the primary entry listing recently visited items.
	RecentID = "recent"

	// MaxRecent is the number of recently visited items kept.
	MaxRecent = 10

	// FavoritesKey is the storage slot holding favorites.
	FavoritesKey = "superNavigation.favorites"

	// RecentKey is the storage slot holding recently visited items.
	RecentKey = "superNavigation.recentItems"
)

// Entry is a stored copy of a menu node annotated with its parent title.
type Entry struct {
	menu.Node
	ParentTitle string `json:"parentTitle,omitempty"`
}

// NewEntry copies n and stamps the parent title when parent is set.
func NewEntry(n menu.Node, parent *menu.Node) Entry {
	e := Entry{Node: n}
	if parent != nil {
		e.ParentTitle = parent.Title
	}
	return e
}

// List identifies one of the visitor lists.
type List string

const (
	// ListFavorites is the favorites list.
	ListFavorites List = FavoritesID
	// ListRecent is the recently visited list.
	ListRecent List = RecentID
)

// Mode is the browsing or searching state of the panel.
type Mode int

const (
	// Browsing shows the two column panel.
	Browsing Mode = iota
	// Searching shows only search results.
	Searching
)

func (m Mode) String() string {
	if m == Searching {
		return "searching"
	}
	return "browsing"
}

// Labels are the user facing strings of the panel.
type Labels struct {
	Favorites            string
	FavoritesDescription string
	Recent               string
	RecentDescription    string
	SelectCategory       string
	EmptyCategory        string
	EmptyFavorites       string
	EmptyRecent          string
}

// DefaultLabels returns the English labels.
func DefaultLabels() Labels {
	return Labels{
		Favorites:            "Favorites",
		FavoritesDescription: "Your favorite menu items",
		Recent:               "Recent",
		RecentDescription:    "Last 10 items visited",
		SelectCategory:       "Select a category",
		EmptyCategory:        "No items available in this category",
		EmptyFavorites:       "No favorite items yet",
		EmptyRecent:          "No recently visited items",
	}
}

// PrimaryEntry is an entry in the categories column.
type PrimaryEntry struct {
	menu.Node
	Synthetic bool `json:"synthetic"`
	Selected  bool `json:"selected"`
}

// ListEntry is an entry in the secondary column.
type ListEntry struct {
	Entry
	// ParentID is the category the entry was listed under, if any.
	ParentID string `json:"parentId,omitempty"`
	// Favorited reports favorite membership for category entries.
	Favorited bool `json:"favorited"`
	// Removable is set for entries listed from favorites or recents.
	Removable bool `json:"removable"`
}

// SecondaryView is the content of the secondary column.
type SecondaryView struct {
	// Title is the column heading.
	Title string `json:"title"`
	// List is set when the view shows favorites or recents.
	List List `json:"list,omitempty"`
	// Items are the listed entries.
	Items []ListEntry `json:"items"`
	// Empty is the message shown when Items is empty.
	Empty string `json:"empty,omitempty"`
}

// Result is a search hit.
type Result struct {
	Entry
	// Breadcrumb names where the hit was found.
	Breadcrumb string `json:"breadcrumb"`
	// Parent is the category of hits found in the menu tree.
	Parent *menu.Node `json:"-"`
}
