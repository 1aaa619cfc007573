package cmd

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"sort"
	"strconv"
	"strings"

	"github.com/kanoonai/kanoon-web/cmd/kanoon-cli/internal/display"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"
)

var servicesDir string

// servicesCmd represents the services command
var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the shared services dashboard modules can look up",
	Long: `Scan the source tree for registry.Key declarations and print each key
with the service type it resolves to. Run it from the repository root or
point --dir at it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := findRegistryKeys(servicesDir, "./...")
		if err != nil {
			return err
		}
		return display.ServicesTable(cmd.OutOrStdout(), services)
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
	servicesCmd.Flags().StringVar(&servicesDir, "dir", ".", "Repository root to scan")
}

// findRegistryKeys loads the packages matching pattern under dir and
// returns every const or var whose type is an instance of registry.Key.
func findRegistryKeys(dir, pattern string) ([]display.Service, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	var services []display.Service
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("load %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				gen, ok := decl.(*ast.GenDecl)
				if !ok || (gen.Tok != token.CONST && gen.Tok != token.VAR) {
					continue
				}
				for _, spec := range gen.Specs {
					vs := spec.(*ast.ValueSpec)
					for i, name := range vs.Names {
						if svc, ok := registryKey(pkg.TypesInfo, vs, i, name); ok {
							services = append(services, svc)
						}
					}
				}
			}
		}
	}

	sort.Slice(services, func(i, j int) bool { return services[i].Key < services[j].Key })
	return services, nil
}

func registryKey(info *types.Info, vs *ast.ValueSpec, i int, name *ast.Ident) (display.Service, bool) {
	obj := info.Defs[name]
	if obj == nil {
		return display.Service{}, false
	}
	named, ok := obj.Type().(*types.Named)
	if !ok || named.Obj().Name() != "Key" || named.Obj().Pkg() == nil ||
		!strings.HasSuffix(named.Obj().Pkg().Path(), "internal/registry") || named.TypeArgs().Len() != 1 {
		return display.Service{}, false
	}

	svc := display.Service{
		Name: name.Name,
		Type: types.TypeString(named.TypeArgs().At(0), func(p *types.Package) string { return p.Name() }),
	}
	if c, ok := obj.(*types.Const); ok && c.Val().Kind() == constant.String {
		svc.Key = constant.StringVal(c.Val())
	} else if i < len(vs.Values) {
		svc.Key = literalKey(vs.Values[i])
	}
	return svc, true
}

// literalKey reads the string from Key[T]("...") conversions.
func literalKey(expr ast.Expr) string {
	if call, ok := expr.(*ast.CallExpr); ok && len(call.Args) == 1 {
		expr = call.Args[0]
	}
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return ""
	}
	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		return ""
	}
	return s
}
