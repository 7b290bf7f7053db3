package menu

import (
	"encoding/json"
	"fmt"
)

const (
	// DefaultSelectedClass is the CSS class applied to selected items.
	DefaultSelectedClass = "selected"
)

// Configuration holds the menu tree and its highlight settings.
type Configuration struct {
	// Items is the top-level menu tree.
	Items []*Item

	// AutoHighlight enables the selected class on rendered items.
	AutoHighlight bool

	// HighlightOnSubpath selects items whose URL is a prefix of the current URL.
	HighlightOnSubpath bool

	// SelectedClass is the CSS class applied to selected items.
	SelectedClass string
}

// NewConfiguration returns a configuration with default settings and an empty tree.
func NewConfiguration() *Configuration {
	return &Configuration{
		Items:              []*Item{},
		AutoHighlight:      true,
		HighlightOnSubpath: true,
		SelectedClass:      DefaultSelectedClass,
	}
}

// SetMenu runs fn against a fresh builder and replaces the whole tree with
// the result. The previous tree is discarded, not merged.
func (c *Configuration) SetMenu(fn BuildFunc) {
	b := NewBuilder()
	if fn != nil {
		fn(b)
	}
	c.Items = b.Items()
}

// ClearMenu empties the tree.
func (c *Configuration) ClearMenu() {
	c.Items = []*Item{}
}

// Empty returns true when there is no menu to render.
func (c *Configuration) Empty() bool {
	return len(c.Items) == 0
}

// Nodes returns the serialized tree.
func (c *Configuration) Nodes() []Node {
	return Nodes(c.Items)
}

// JSON returns the serialized tree as a JSON array.
func (c *Configuration) JSON() ([]byte, error) {
	b, err := json.Marshal(c.Nodes())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal menu: %w", err)
	}
	return b, nil
}

// Find returns the first item with the given id and its parent.
func (c *Configuration) Find(id string) (*Item, *Item) {
	return findItem(c.Items, nil, id)
}

func findItem(items []*Item, parent *Item, id string) (*Item, *Item) {
	for _, i := range items {
		if i.ID == id {
			return i, parent
		}
		if found, p := findItem(i.Children, i, id); found != nil {
			return found, p
		}
	}
	return nil, nil
}
