package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Item(t *testing.T) {
	b := NewBuilder()
	assert.Empty(t, b.Items())

	i := b.Item("test", "Test Item", WithDescription("Test description"), WithIcon("fas fa-test"), WithURL("/test"))

	require.Len(t, b.Items(), 1)
	assert.Same(t, i, b.Items()[0])
	assert.Equal(t, "test", i.ID)
	assert.Equal(t, "/test", i.URL)
}

func TestBuilder_ItemWithChildren(t *testing.T) {
	b := NewBuilder()
	parent := b.Item("parent", "Parent Item", WithURL("/parent"), WithChildren(func(b *Builder) {
		b.Item("child1", "Child 1", WithURL("/parent/child1"))
		b.Item("child2", "Child 2", WithURL("/parent/child2"))
	}))

	require.Len(t, b.Items(), 1)
	require.Len(t, parent.Children, 2)
	assert.Equal(t, "child1", parent.Children[0].ID)
	assert.Equal(t, "/parent/child1", parent.Children[0].URL)
	assert.Equal(t, "child2", parent.Children[1].ID)
}

func TestBuilder_MultipleTopLevel(t *testing.T) {
	b := NewBuilder()
	b.Item("item1", "Item 1")
	b.Item("item2", "Item 2")
	b.Item("item3", "Item 3")

	ids := make([]string, 0, len(b.Items()))
	for _, i := range b.Items() {
		ids = append(ids, i.ID)
	}
	assert.Equal(t, []string{"item1", "item2", "item3"}, ids)
}

func TestBuilder_NestedLevels(t *testing.T) {
	b := NewBuilder()
	b.Item("level1", "Level 1", WithChildren(func(b *Builder) {
		b.Item("level2", "Level 2", WithChildren(func(b *Builder) {
			b.Item("level3", "Level 3")
		}))
	}))

	level1 := b.Items()[0]
	level2 := level1.Children[0]
	level3 := level2.Children[0]

	assert.Equal(t, "level1", level1.ID)
	assert.Equal(t, "level2", level2.ID)
	assert.Equal(t, "level3", level3.ID)
	assert.False(t, level3.HasChildren())
}

func TestBuilder_DuplicateIDsCoexist(t *testing.T) {
	b := NewBuilder()
	b.Item("dup", "First")
	b.Item("dup", "Second")

	require.Len(t, b.Items(), 2)
	assert.Equal(t, "First", b.Items()[0].Title)
	assert.Equal(t, "Second", b.Items()[1].Title)
}

func TestBuilder_Clear(t *testing.T) {
	b := NewBuilder()
	b.Clear()
	assert.Empty(t, b.Items())

	b.Item("test1", "Test 1")
	b.Item("test2", "Test 2")
	require.Len(t, b.Items(), 2)

	b.Clear()
	assert.Empty(t, b.Items())
	b.Clear()
	assert.Empty(t, b.Items())
}
