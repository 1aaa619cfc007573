package display

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Service is one registry key found in the source tree.
type Service struct {
	Name string
	Key  string
	Type string
}

// ServicesTable writes services as an aligned table.
func ServicesTable(out io.Writer, list []Service) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "KEY\tTYPE\tDECLARED AS")
	fmt.Fprintln(w, "---\t----\t-----------")

	if len(list) == 0 {
		fmt.Fprintln(w, "No services found")
	}
	for _, s := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Key, s.Type, s.Name)
	}
	return w.Flush()
}
