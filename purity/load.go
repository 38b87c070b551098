package purity

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"
)

// LoadPackage loads a Go package from a package path or a file path and
// builds its functions in SSA form.
func LoadPackage(path string) (*ssa.Package, error) {
	conf := &packages.Config{
		Mode: packages.LoadAllSyntax,
	}
	query := path
	if strings.HasSuffix(path, ".go") {
		query = "file=" + path
	}
	pkgs, err := packages.Load(conf, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load the target package")
	}
	if len(pkgs) == 0 {
		return nil, errors.New("no packages could be loaded")
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, errors.Errorf("failed to load package %s: %v", pkg.PkgPath, pkg.Errors)
	}
	// It is possible that pkg.IllTyped becomes true but pkg.Errors has no error records.
	if pkg.IllTyped {
		return nil, errors.Errorf("package %s contains type error", pkg.PkgPath)
	}

	if len(pkg.Syntax) == 0 {
		return nil, errors.Errorf("package %s has no source files", pkg.PkgPath)
	}

	ssaProg, ssaPkgs := ssautil.Packages(pkgs[:1], ssa.BuilderMode(0))
	if ssaPkgs[0] == nil {
		return nil, errors.Errorf("failed to compile package %s into SSA form", pkg.PkgPath)
	}
	ssaProg.Build()

	return ssaPkgs[0], nil
}
