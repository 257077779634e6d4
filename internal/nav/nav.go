package nav

import (
	"path"
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/games"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/", Label: "Home"},
	{Path: "/games", Label: "Games"},
	{Path: "/about", Label: "About"},
	{Path: "/news", Label: "News"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	currentPath = normalize(currentPath)
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// exact or prefix boundary: "/games" or "/games/..."
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path.
// Known sections use their nav label; deeper segments use labels[segment] when
// present (e.g. a game title for its id) and a prettified segment otherwise.
func Breadcrumbs(currentPath string, labels map[string]string) []Crumb {
	currentPath = normalize(currentPath)
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	parts := strings.Split(strings.TrimPrefix(currentPath, "/"), "/")
	href := ""
	for i, seg := range parts {
		href += "/" + seg
		label := labels[seg]
		if label == "" && i == 0 {
			label = sectionLabel(href)
		}
		if label == "" {
			label = titleFromSegment(seg)
		}
		crumbs = append(crumbs, Crumb{Href: href, Label: label, Active: i == len(parts)-1})
	}
	return crumbs
}

func sectionLabel(p string) string {
	for _, it := range Main {
		if it.Path == p {
			return it.Label
		}
	}
	return ""
}

func normalize(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	clean := path.Clean("/" + p)
	if clean == "." {
		return "/"
	}
	return clean
}

func titleFromSegment(seg string) string {
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	r := []rune(s)
	// ASCII only is sufficient for slugs here
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
