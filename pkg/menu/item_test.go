package menu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	i := NewItem("test", "Test Item",
		WithDescription("Test description"),
		WithIcon("fas fa-test"),
		WithURL("/test"),
	)

	assert.Equal(t, "test", i.ID)
	assert.Equal(t, "Test Item", i.Title)
	assert.Equal(t, "Test description", i.Description)
	assert.Equal(t, "fas fa-test", i.Icon)
	assert.Equal(t, "/test", i.URL)
	assert.Empty(t, i.Children)
	assert.NotNil(t, i.Options)
	assert.Empty(t, i.Options)
}

type stringerID struct{}

func (stringerID) String() string { return "from-stringer" }

func TestNewItem_CoercesID(t *testing.T) {
	tests := []struct {
		name string
		id   any
		want string
	}{
		{name: "int", id: 123, want: "123"},
		{name: "string", id: "users", want: "users"},
		{name: "stringer", id: stringerID{}, want: "from-stringer"},
		{name: "nil", id: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewItem(tt.id, "x").ID)
		})
	}
}

func TestItem_AddChild(t *testing.T) {
	parent := NewItem("test", "Test Item")
	assert.False(t, parent.HasChildren())

	child := NewItem("child", "Child Item", WithURL("/test/child"))
	parent.AddChild(child)

	assert.True(t, parent.HasChildren())
	require.Len(t, parent.Children, 1)
	assert.Same(t, child, parent.Children[0])
}

func TestItem_WithOptions(t *testing.T) {
	i := NewItem("x", "X", WithOptions(map[string]any{"badge": 3}), WithOptions(map[string]any{"target": "_blank"}))
	assert.Equal(t, map[string]any{"badge": 3, "target": "_blank"}, i.Options)
}

func TestItem_MarshalJSON_AllKeysPresent(t *testing.T) {
	i := NewItem("bare", "Bare")

	b, err := json.Marshal(i)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))

	for _, key := range []string{"id", "title", "description", "icon", "url", "children"} {
		assert.Contains(t, got, key)
	}
	assert.Nil(t, got["description"])
	assert.Nil(t, got["icon"])
	assert.Nil(t, got["url"])
	assert.Equal(t, []any{}, got["children"])
	assert.NotContains(t, got, "options")
}

func TestItem_Node_PreservesChildOrder(t *testing.T) {
	parent := NewItem("test", "Test Item", WithURL("/test"), WithChildren(func(b *Builder) {
		b.Item("a", "A", WithURL("/a"))
		b.Item("b", "B", WithChildren(func(b *Builder) {
			b.Item("b1", "B1")
		}))
	}))

	b, err := json.Marshal(parent)
	require.NoError(t, err)

	var decoded Node
	require.NoError(t, json.Unmarshal(b, &decoded))

	assert.Equal(t, "test", decoded.ID)
	assert.Equal(t, "/test", decoded.Link())
	require.Len(t, decoded.Children, 2)
	assert.Equal(t, "a", decoded.Children[0].ID)
	assert.Equal(t, "b", decoded.Children[1].ID)
	assert.Equal(t, "b1", decoded.Children[1].Children[0].ID)
	assert.False(t, decoded.Children[1].HasURL())
}

func TestNode_Accessors(t *testing.T) {
	n := NewItem("x", "X").Node()
	assert.Equal(t, "", n.DescriptionText())
	assert.Equal(t, "fas fa-circle", n.IconClass("fas fa-circle"))

	n = NewItem("y", "Y", WithIcon("fas fa-y"), WithDescription("why")).Node()
	assert.Equal(t, "why", n.DescriptionText())
	assert.Equal(t, "fas fa-y", n.IconClass("fas fa-circle"))
}

func TestFind(t *testing.T) {
	cfg := NewConfiguration()
	cfg.SetMenu(func(b *Builder) {
		b.Item("dashboard", "Dashboard", WithChildren(func(b *Builder) {
			b.Item("analytics", "Analytics", WithURL("/dashboard/analytics"))
		}))
		b.Item("users", "Users")
	})
	nodes := cfg.Nodes()

	n, p := Find(nodes, "analytics")
	require.NotNil(t, n)
	require.NotNil(t, p)
	assert.Equal(t, "Dashboard", p.Title)

	n, p = Find(nodes, "users")
	require.NotNil(t, n)
	assert.Nil(t, p)

	n, _ = Find(nodes, "missing")
	assert.Nil(t, n)

	item, parent := cfg.Find("analytics")
	require.NotNil(t, item)
	assert.Equal(t, "dashboard", parent.ID)
}
