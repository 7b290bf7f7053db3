package render

import "fmt"

// Options are the presentation settings of the navigation fragments.
type Options struct {
	ButtonText   string
	ButtonIcon   string
	ButtonClass  string
	Title        string
	DefaultIcon  string
	NavigatePath string
	SearchPath   string
	ActionPath   string
	Stylesheet   string
	ClientScript string

	SearchPlaceholder string
	CategoriesTitle   string
	ResultsTitle      string
	ResultsFor        string
	NoResults         string
	AddFavorite       string
	RemoveFavorite    string
	RemoveFromList    string
}

// DefaultOptions returns the default presentation settings.
func DefaultOptions() Options {
	return Options{
		ButtonText:        "Open Menu",
		ButtonIcon:        "fas fa-bars",
		ButtonClass:       "super-navigation-btn",
		Title:             "Main Menu",
		DefaultIcon:       "fas fa-circle",
		NavigatePath:      "/go/",
		SearchPath:        "/ui/search",
		ActionPath:        "/ui/",
		Stylesheet:        "/static/super_navigation.css",
		ClientScript:      "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js",
		SearchPlaceholder: "Search the menu...",
		CategoriesTitle:   "Categories",
		ResultsTitle:      "Search results",
		ResultsFor:        "Results for %q",
		NoResults:         "No results found for %q",
		AddFavorite:       "Add to favorites",
		RemoveFavorite:    "Remove from favorites",
		RemoveFromList:    "Remove from %s",
	}
}

// Merge returns o with empty fields filled from DefaultOptions.
func (o Options) Merge() Options {
	d := DefaultOptions()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&o.ButtonText, d.ButtonText)
	fill(&o.ButtonIcon, d.ButtonIcon)
	fill(&o.ButtonClass, d.ButtonClass)
	fill(&o.Title, d.Title)
	fill(&o.DefaultIcon, d.DefaultIcon)
	fill(&o.NavigatePath, d.NavigatePath)
	fill(&o.SearchPath, d.SearchPath)
	fill(&o.ActionPath, d.ActionPath)
	fill(&o.Stylesheet, d.Stylesheet)
	fill(&o.ClientScript, d.ClientScript)
	fill(&o.SearchPlaceholder, d.SearchPlaceholder)
	fill(&o.CategoriesTitle, d.CategoriesTitle)
	fill(&o.ResultsTitle, d.ResultsTitle)
	fill(&o.ResultsFor, d.ResultsFor)
	fill(&o.NoResults, d.NoResults)
	fill(&o.AddFavorite, d.AddFavorite)
	fill(&o.RemoveFavorite, d.RemoveFavorite)
	fill(&o.RemoveFromList, d.RemoveFromList)
	return o
}

func (o Options) resultsHeader(query string) string {
	return fmt.Sprintf(o.ResultsFor, query)
}

func (o Options) noResults(query string) string {
	return fmt.Sprintf(o.NoResults, query)
}
