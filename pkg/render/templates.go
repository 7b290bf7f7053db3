package render

import "html/template"

var templates = template.Must(template.New("supernav").Parse(`
{{define "button"}}<a id="openSuperMenuBtn" class="{{.ButtonClass}}" href="{{.Href}}" role="button"><i class="{{.ButtonIcon}}"></i> {{.ButtonText}}</a>{{end}}

{{define "item"}}<div class="{{.Class}}" data-item-id="{{.ID}}"{{if .ParentID}} data-parent-id="{{.ParentID}}"{{end}}>
<a class="super-menu-item-link" href="{{.Href}}">
<div class="super-menu-item-icon"><i class="{{.Icon}}"></i></div>
<div class="super-menu-item-content">
<div class="super-menu-item-title">{{.Title}}</div>
<div class="super-menu-item-description">{{.Description}}</div>
{{- if .Breadcrumb}}
<div class="super-search-result-breadcrumb">{{.Breadcrumb}}</div>
{{- end}}
</div>
</a>
{{- if .Action}}
<div class="super-menu-item-actions">
<button class="{{.Action.Class}}" type="button" title="{{.Action.Title}}" data-on:click="{{if eq .Action.Method "DELETE"}}@delete{{else}}@post{{end}}('{{.Action.Href}}')"><i class="{{.Action.Icon}}"></i></button>
</div>
{{- end}}
</div>{{end}}

{{define "results"}}<div class="super-search-results{{if .Active}} active{{end}}" id="superSearchResults">
<div class="super-search-results-header" id="superSearchResultsHeader">{{.Header}}</div>
<div class="super-search-results-list" id="superSearchResultsList">
{{- range .Rows}}
{{template "item" .}}
{{- else}}{{if .Active}}
<div class="super-no-results"><i class="fas fa-search"></i><p>{{.Empty}}</p></div>
{{- end}}{{end}}
</div>
</div>{{end}}

{{define "overlay"}}<div id="superMenuOverlay" class="super-menu-overlay{{if .Open}} active{{end}}">
<div class="super-menu-container">
<div class="super-menu-header">
<h2>{{.Title}}</h2>
<a id="closeSuperMenuBtn" class="super-menu-close-btn" href="{{.CloseHref}}" role="button"><i class="fas fa-times"></i></a>
</div>
<div class="super-menu-search">
<form class="super-search-container" method="get" action="{{.CloseHref}}" role="search">
<i class="fas fa-search super-search-icon"></i>
<input type="text" id="superMenuSearchInput" name="q" class="super-search-input" placeholder="{{.Placeholder}}" value="{{.Query}}" autocomplete="off" data-bind:query data-on:input__debounce.300ms="@get('{{.SearchPath}}')">
<a id="clearSuperSearchBtn" class="super-clear-search-btn" href="{{.ClearHref}}" role="button"{{if not .Searching}} hidden{{end}}><i class="fas fa-times"></i></a>
</form>
</div>
<div class="super-menu-content" id="superMenuContent"{{if .Searching}} hidden{{end}}>
<div class="super-menu-column super-menu-column-primary">
<div class="super-menu-section-title">{{.CategoriesTitle}}</div>
<div id="superPrimaryMenuItems" class="super-menu-items">
{{- range $i, $row := .Primary}}
{{- if eq $i 2}}
<div class="super-menu-separator"></div>
{{- end}}
{{template "item" $row}}
{{- end}}
</div>
</div>
<div class="super-menu-column super-menu-column-secondary">
<div class="super-menu-section-title" id="superSecondaryTitle">{{.SecondaryTitle}}</div>
<div id="superSecondaryMenuItems" class="super-menu-items">
{{- range .Secondary}}
{{template "item" .}}
{{- else}}{{if .SecondaryEmpty}}
<div class="super-empty-state"><i class="fas fa-folder-open"></i><p>{{.SecondaryEmpty}}</p></div>
{{- end}}{{end}}
</div>
</div>
</div>
{{template "results" .Results}}
</div>
</div>{{end}}

{{define "navigation"}}<div id="super-navigation-container">
{{template "button" .Button}}
{{template "overlay" .Overlay}}
</div>{{end}}

{{define "script"}}<script>
document.addEventListener('DOMContentLoaded', function() {
  if (typeof SuperNavigationMenu !== 'undefined') {
    window.superNavigationMenu = new SuperNavigationMenu();
    window.superNavigationMenu.updateMenuData({{.}});
  }
});
</script>{{end}}

{{define "stylesheet"}}<link rel="stylesheet" href="{{.}}">{{end}}

{{define "page"}}<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.PageTitle}}</title>
{{template "stylesheet" .Options.Stylesheet}}
<script type="module" src="{{.Options.ClientScript}}"></script>
</head>
<body>
{{if .Navigation}}{{template "navigation" .Navigation}}{{end}}
<main id="content" data-current-url="{{.CurrentURL}}"><h1>{{.PageTitle}}</h1></main>
{{template "script" .Menu}}
</body>
</html>{{end}}
`))
