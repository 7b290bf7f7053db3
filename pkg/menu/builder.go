package menu

// Builder accumulates top-level items. Nested items are declared through
// WithChildren, which runs against a fresh builder scoped to the parent.
type Builder struct {
	items []*Item
}

// BuildFunc declares items against a builder.
type BuildFunc func(b *Builder)

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{items: []*Item{}}
}

// WithChildren declares the children of an item. The function is invoked
// with a nested builder once the item is constructed and every item it
// declares is attached, in order.
func WithChildren(fn BuildFunc) ItemOption {
	return func(i *Item) {
		if fn == nil {
			return
		}
		nested := NewBuilder()
		fn(nested)
		for _, child := range nested.items {
			i.AddChild(child)
		}
	}
}

// Item constructs an item, appends it to the builder and returns it.
// Duplicate ids are not detected.
func (b *Builder) Item(id any, title string, opts ...ItemOption) *Item {
	i := NewItem(id, title, opts...)
	b.items = append(b.items, i)
	return i
}

// Items returns the top-level items in declaration order.
func (b *Builder) Items() []*Item {
	return b.items
}

// Clear discards all top-level items.
func (b *Builder) Clear() {
	b.items = []*Item{}
}
