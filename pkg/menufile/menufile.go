// Package menufile declares menus in YAML and keeps a registry in sync with
// the file on disk.
//
//	items:
//	  - id: dashboard
//	    title: Dashboard
//	    icon: fas fa-tachometer-alt
//	    url: /dashboard
//	    children:
//	      - id: analytics
//	        title: Analytics
//	        url: /dashboard/analytics
package menufile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mchmarny/supernav/pkg/menu"
)

// File is a parsed menu file.
type File struct {
	Items []Entry `yaml:"items"`
}

// Entry is one declared menu item.
type Entry struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description,omitempty"`
	Icon        string         `yaml:"icon,omitempty"`
	URL         string         `yaml:"url,omitempty"`
	Options     map[string]any `yaml:"options,omitempty"`
	Children    []Entry        `yaml:"children,omitempty"`
}

// Parse decodes a menu file.
func Parse(b []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("failed to parse menu: %w", err)
	}
	return &f, nil
}

// LoadFile reads and decodes the menu file at path.
func LoadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file %s: %w", path, err)
	}

	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Build declares the file items on b in file order.
func (f *File) Build(b *menu.Builder) {
	declare(b, f.Items)
}

func declare(b *menu.Builder, entries []Entry) {
	for _, e := range entries {
		opts := []menu.ItemOption{}
		if e.Description != "" {
			opts = append(opts, menu.WithDescription(e.Description))
		}
		if e.Icon != "" {
			opts = append(opts, menu.WithIcon(e.Icon))
		}
		if e.URL != "" {
			opts = append(opts, menu.WithURL(e.URL))
		}
		if len(e.Options) > 0 {
			opts = append(opts, menu.WithOptions(e.Options))
		}
		if len(e.Children) > 0 {
			children := e.Children
			opts = append(opts, menu.WithChildren(func(nb *menu.Builder) {
				declare(nb, children)
			}))
		}
		b.Item(e.ID, e.Title, opts...)
	}
}

// Apply replaces the menu of cfg with the file items.
func (f *File) Apply(cfg *menu.Configuration) {
	cfg.SetMenu(f.Build)
}

// Configuration returns a new configuration holding the file items.
func (f *File) Configuration() *menu.Configuration {
	cfg := menu.NewConfiguration()
	f.Apply(cfg)
	return cfg
}
