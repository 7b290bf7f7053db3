package menu

import "strings"

// Selected reports whether item matches currentURL. An item is selected when
// its URL equals currentURL, when onSubpath is set and currentURL starts with
// the item URL, or when any descendant is selected. Items without a URL are
// never selected.
//
// The subpath test is a plain string prefix: "/test" also matches "/testing".
func Selected(item *Item, currentURL string, onSubpath bool) bool {
	if item == nil || item.URL == "" {
		return false
	}

	if item.URL == currentURL {
		return true
	}

	if onSubpath && strings.HasPrefix(currentURL, item.URL) {
		return true
	}

	for _, child := range item.Children {
		if Selected(child, currentURL, onSubpath) {
			return true
		}
	}

	return false
}

// IsSelected resolves item against currentURL using the configured subpath setting.
func (c *Configuration) IsSelected(item *Item, currentURL string) bool {
	return Selected(item, currentURL, c.HighlightOnSubpath)
}

// SelectedClassFor returns the selected class when auto highlighting is on
// and the item is selected, otherwise an empty string.
func (c *Configuration) SelectedClassFor(item *Item, currentURL string) string {
	if !c.AutoHighlight || !c.IsSelected(item, currentURL) {
		return ""
	}
	return c.SelectedClass
}
