// Package gossa exposes Go functions, compiled to SSA form, to the clone
// analysis.
//
// Go has no target clones, so variants are spelled by convention: a function
// called base__variant is presented as base.variant, and a doc comment line
// reading //mv:target_clones marks the default variant of a family.
package gossa

import (
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"

	"github.com/sarchlab/mvprune/api"
	"github.com/sarchlab/mvprune/core"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"
)

// CloneMarker is the doc comment line that marks a function as the default
// variant of a clone family.
const CloneMarker = "//mv:target_clones"

// VariantSeparator separates the base name from the variant in Go
// identifiers.
const VariantSeparator = "__"

// Unit is a set of Go functions in source order.
type Unit struct {
	Name  string
	Funcs []*Function
}

// Functions returns the functions of the unit in source order.
func (u *Unit) Functions() []api.Function {
	fns := make([]api.Function, len(u.Funcs))
	for i, f := range u.Funcs {
		fns[i] = f
	}
	return fns
}

// Function returns the function presented as name, or nil.
func (u *Unit) Function(name string) *Function {
	for _, f := range u.Funcs {
		if f.name == name {
			return f
		}
	}
	return nil
}

// Loader turns Go source into units.
type Loader struct {
	separator string
	mode      ssa.BuilderMode
}

// NewLoader creates a loader that presents variants with the default
// separator.
func NewLoader() Loader {
	return Loader{
		separator: core.DefaultNameOptions().Separator,
	}
}

// WithSeparator sets the separator used in presented names. It should match
// the separator the tracker classifies with.
func (l Loader) WithSeparator(sep string) Loader {
	if sep == "" {
		panic("separator must not be empty")
	}
	l.separator = sep
	return l
}

// WithMode sets the SSA builder mode.
func (l Loader) WithMode(mode ssa.BuilderMode) Loader {
	l.mode = mode
	return l
}

// Load loads the packages matched by patterns, relative to dir.
func Load(dir string, patterns ...string) (*Unit, error) {
	return NewLoader().Load(dir, patterns...)
}

// LoadSource type-checks a single Go file given as src.
func LoadSource(filename string, src []byte) (*Unit, error) {
	return NewLoader().LoadSource(filename, src)
}

// Load loads the packages matched by patterns, relative to dir.
func (l Loader) Load(dir string, patterns ...string) (*Unit, error) {
	cfg := &packages.Config{
		Mode:  packages.LoadAllSyntax,
		Tests: false,
		Dir:   dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if err := packageErrors(pkgs); err != nil {
		return nil, err
	}

	prog, ssaPkgs := ssautil.AllPackages(pkgs, l.mode)
	prog.Build()

	u := &Unit{Name: strings.Join(patterns, " ")}
	for i, pkg := range pkgs {
		if ssaPkgs[i] == nil {
			continue
		}

		u.Funcs = append(u.Funcs,
			l.functions(prog, pkg.TypesInfo, pkg.Syntax)...)
	}

	return u, nil
}

// LoadSource type-checks a single Go file given as src. The file may only
// import packages available to the default importer.
func (l Loader) LoadSource(filename string, src []byte) (*Unit, error) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	pkg := types.NewPackage(f.Name.Name, f.Name.Name)
	tc := &types.Config{Importer: importer.Default()}
	files := []*ast.File{f}

	ssaPkg, info, err := ssautil.BuildPackage(tc, fset, pkg, files, l.mode)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", filename, err)
	}

	return &Unit{
		Name:  filename,
		Funcs: l.functions(ssaPkg.Prog, info, files),
	}, nil
}

func packageErrors(pkgs []*packages.Package) error {
	var errs []error

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, fmt.Errorf("%s: %w", pkg.PkgPath, e))
		}
	})

	return errors.Join(errs...)
}

// functions lists the package-level functions declared in files, in source
// order. Methods are left out since their names do not form families.
func (l Loader) functions(
	prog *ssa.Program,
	info *types.Info,
	files []*ast.File,
) []*Function {
	var fns []*Function

	for _, file := range files {
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Recv != nil {
				continue
			}

			obj, ok := info.Defs[fd.Name].(*types.Func)
			if !ok {
				continue
			}

			fn := prog.FuncValue(obj)
			if fn == nil {
				continue
			}

			fns = append(fns, newFunction(fn, l.displayName(fd.Name.Name),
				hasMarker(fd.Doc), fd.Body == nil))
		}
	}

	return fns
}

func (l Loader) displayName(ident string) string {
	base, variant, found := strings.Cut(ident, VariantSeparator)
	if !found || base == "" || variant == "" {
		return ident
	}

	return base + l.separator + variant
}

func hasMarker(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == CloneMarker {
			return true
		}
	}

	return false
}
