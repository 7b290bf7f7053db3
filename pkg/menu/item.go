package menu

import (
	"encoding/json"
	"fmt"
)

// Item represents an individual item in the menu, which may contain sub-items.
type Item struct {
	// ID identifies the item. Uniqueness is expected by callers but not enforced.
	ID string

	// Title is the title of the menu item.
	Title string

	// Description is an optional description of the menu item.
	Description string

	// Icon is an optional icon class token (e.g. "fas fa-users").
	Icon string

	// URL is the optional navigation target. Items without a URL are never
	// selected directly.
	URL string

	// Children are the sub-items of this menu item, in declaration order.
	Children []*Item

	// Options is an extensibility bag. It is not interpreted or serialized.
	Options map[string]any
}

// ItemOption configures optional fields of an Item.
type ItemOption func(*Item)

// WithDescription sets the item description.
func WithDescription(d string) ItemOption {
	return func(i *Item) { i.Description = d }
}

// WithIcon sets the item icon class.
func WithIcon(icon string) ItemOption {
	return func(i *Item) { i.Icon = icon }
}

// WithURL sets the item navigation target.
func WithURL(url string) ItemOption {
	return func(i *Item) { i.URL = url }
}

// WithOptions merges the provided values into the item options.
func WithOptions(opts map[string]any) ItemOption {
	return func(i *Item) {
		for k, v := range opts {
			i.Options[k] = v
		}
	}
}

// NewItem creates a new item. The id is coerced to its string form.
func NewItem(id any, title string, opts ...ItemOption) *Item {
	i := &Item{
		ID:       idString(id),
		Title:    title,
		Children: []*Item{},
		Options:  map[string]any{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(i)
		}
	}

	return i
}

func idString(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// AddChild appends a child item.
func (i *Item) AddChild(child *Item) {
	i.Children = append(i.Children, child)
}

// HasChildren returns true when the item has at least one child.
func (i *Item) HasChildren() bool {
	return len(i.Children) > 0
}

// Node returns the serialized form of the item and all of its descendants.
func (i *Item) Node() Node {
	n := Node{
		ID:          i.ID,
		Title:       i.Title,
		Description: optional(i.Description),
		Icon:        optional(i.Icon),
		URL:         optional(i.URL),
		Children:    make([]Node, 0, len(i.Children)),
	}

	for _, c := range i.Children {
		n.Children = append(n.Children, c.Node())
	}

	return n
}

// MarshalJSON encodes the item in its Node shape. Options are excluded.
func (i *Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.Node())
}

// Node is the wire form of an Item shared between the server-built tree
// and the navigator. Unset optional fields encode as null; children always
// encode as an array.
type Node struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	URL         *string `json:"url"`
	Children    []Node  `json:"children"`
}

// Nodes serializes a sequence of items.
func Nodes(items []*Item) []Node {
	nodes := make([]Node, 0, len(items))
	for _, i := range items {
		nodes = append(nodes, i.Node())
	}
	return nodes
}

// DescriptionText returns the description or an empty string.
func (n Node) DescriptionText() string {
	return value(n.Description)
}

// IconClass returns the icon or the given fallback when unset.
func (n Node) IconClass(fallback string) string {
	if v := value(n.Icon); v != "" {
		return v
	}
	return fallback
}

// Link returns the URL or an empty string.
func (n Node) Link() string {
	return value(n.URL)
}

// HasURL returns true when the node carries a navigation target.
func (n Node) HasURL() bool {
	return n.Link() != ""
}

// Find returns the first node with the given id in depth-first order
// along with its parent. Top-level matches have a nil parent.
func Find(nodes []Node, id string) (*Node, *Node) {
	for idx := range nodes {
		if nodes[idx].ID == id {
			return &nodes[idx], nil
		}
		if n, p := Find(nodes[idx].Children, id); n != nil {
			if p == nil {
				p = &nodes[idx]
			}
			return n, p
		}
	}
	return nil, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
