// Package display formats CLI output.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kanoonai/kanoon-web/internal/routes"
)

// RouteDisplay represents a route for display purposes
type RouteDisplay struct {
	Path      string `json:"path"`
	Title     string `json:"title"`
	Group     string `json:"group"`
	IsIndex   bool   `json:"is_index,omitempty"`
	InSidebar bool   `json:"in_sidebar,omitempty"`
}

// RoutesTable writes routes as an aligned table.
func RoutesTable(out io.Writer, list []routes.Route) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "PATH\tTITLE\tGROUP\tSIDEBAR")
	fmt.Fprintln(w, "----\t-----\t-----\t-------")

	if len(list) == 0 {
		fmt.Fprintln(w, "No routes found")
	}
	for _, r := range list {
		sidebar := "-"
		if r.InSidebar {
			sidebar = "yes"
		}
		title := r.Title
		if r.IsIndex {
			title += " (index)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Path, title, r.Group, sidebar)
	}
	return w.Flush()
}

// RoutesJSON writes routes as indented JSON.
func RoutesJSON(out io.Writer, list []routes.Route) error {
	displays := make([]RouteDisplay, len(list))
	for i, r := range list {
		displays[i] = RouteDisplay{
			Path:      r.Path,
			Title:     r.Title,
			Group:     string(r.Group),
			IsIndex:   r.IsIndex,
			InSidebar: r.InSidebar,
		}
	}

	output := struct {
		Routes []RouteDisplay `json:"routes"`
		Count  int            `json:"count"`
	}{
		Routes: displays,
		Count:  len(displays),
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
