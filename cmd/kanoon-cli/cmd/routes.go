package cmd

import (
	"fmt"

	"github.com/kanoonai/kanoon-web/cmd/kanoon-cli/internal/display"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/spf13/cobra"
)

var (
	routesOutputFormat string
	routesGroupFilter  string
)

// routesCmd represents the routes command
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the route table",
	Long: `List every page of the site with its title and group.

Examples:
  kanoon-cli routes                      # All routes in table format
  kanoon-cli routes --group dashboard    # Only the dashboard tools
  kanoon-cli routes --format json        # Machine-readable output`,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := filterRoutes(routes.All(), routesGroupFilter)
		if err != nil {
			return err
		}

		switch routesOutputFormat {
		case "json":
			return display.RoutesJSON(cmd.OutOrStdout(), list)
		case "table":
			return display.RoutesTable(cmd.OutOrStdout(), list)
		default:
			return fmt.Errorf("invalid format %q, valid formats: table, json", routesOutputFormat)
		}
	},
}

func filterRoutes(all []routes.Route, group string) ([]routes.Route, error) {
	if group == "" {
		return all, nil
	}
	if group != string(routes.Public) && group != string(routes.Dashboard) {
		return nil, fmt.Errorf("invalid group %q, valid groups: %s, %s", group, routes.Public, routes.Dashboard)
	}

	var out []routes.Route
	for _, r := range all {
		if string(r.Group) == group {
			out = append(out, r)
		}
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(routesCmd)
	routesCmd.Flags().StringVarP(&routesOutputFormat, "format", "f", "table", "Output format (table, json)")
	routesCmd.Flags().StringVarP(&routesGroupFilter, "group", "g", "", "Only list routes of this group (public, dashboard)")
}
