package menufile

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/supernav/pkg/menu"
)

const sample = `
items:
  - id: dashboard
    title: Dashboard
    description: Main dashboard
    icon: fas fa-tachometer-alt
    url: /dashboard
    children:
      - id: analytics
        title: Analytics
        url: /dashboard/analytics
      - id: reports
        title: Reports
        url: /dashboard/reports
        options:
          target: _blank
  - id: users
    title: Users
    children:
      - id: user_list
        title: User List
        url: /users
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, f.Items, 2)
	assert.Equal(t, "dashboard", f.Items[0].ID)
	assert.Len(t, f.Items[0].Children, 2)
	assert.Equal(t, "_blank", f.Items[0].Children[1].Options["target"])

	_, err = Parse([]byte("items: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse menu")
}

func TestConfiguration(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	cfg := f.Configuration()
	require.Len(t, cfg.Items, 2)

	dash := cfg.Items[0]
	assert.Equal(t, "Dashboard", dash.Title)
	assert.Equal(t, "Main dashboard", dash.Description)
	assert.Equal(t, "/dashboard", dash.URL)
	require.Len(t, dash.Children, 2)
	assert.Equal(t, "analytics", dash.Children[0].ID)
	assert.Equal(t, "reports", dash.Children[1].ID)

	users := cfg.Items[1]
	assert.Empty(t, users.URL)
	assert.True(t, users.HasChildren())

	item, parent := cfg.Find("user_list")
	require.NotNil(t, item)
	assert.Equal(t, "users", parent.ID)
}

func TestApply_Replaces(t *testing.T) {
	cfg := menu.NewConfiguration()
	cfg.SetMenu(func(b *menu.Builder) { b.Item("old", "Old") })

	f, err := Parse([]byte(sample))
	require.NoError(t, err)
	f.Apply(cfg)

	item, _ := cfg.Find("old")
	assert.Nil(t, item)
	assert.Len(t, cfg.Items, 2)

	(&File{}).Apply(cfg)
	assert.True(t, cfg.Empty())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Items, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu     sync.Mutex
		loaded []*File
	)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 20*time.Millisecond, func(f *File) {
			mu.Lock()
			loaded = append(loaded, f)
			mu.Unlock()
		})
	}()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("items: []"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("items: [{id: solo, title: Solo}]"), 0o600))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(loaded) > 0 && len(loaded[len(loaded)-1].Items) == 1
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	last := loaded[len(loaded)-1]
	mu.Unlock()
	require.Len(t, last.Items, 1)
	assert.Equal(t, "solo", last.Items[0].ID)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "menu.yaml"), 0, func(*File) {})
	require.Error(t, err)
}
