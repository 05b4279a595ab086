package internalcheck

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/ddsbridge/dds-go"

func loadModule(t *testing.T, mode packages.LoadMode, patterns ...string) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{Mode: mode}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	return pkgs
}

func TestCgoOnlyInBindings(t *testing.T) {
	pkgs := loadModule(t, packages.NeedName|packages.NeedSyntax|packages.NeedFiles, modulePath+"/...")

	var findings []string
	for _, pkg := range pkgs {
		if pkg.PkgPath == modulePath+"/internal/bindings" {
			continue
		}
		for _, file := range pkg.Syntax {
			for _, imp := range file.Imports {
				if imp.Path.Value == `"C"` {
					findings = append(findings, fmt.Sprintf("%s imports \"C\"", pkg.Fset.Position(file.Pos()).Filename))
				}
			}
		}
	}
	if len(findings) > 0 {
		t.Fatalf("cgo boundary violation:\n%s", strings.Join(findings, "\n"))
	}
}

func TestBridgeStandsAlone(t *testing.T) {
	pkgs := loadModule(t, packages.NeedName|packages.NeedImports, modulePath+"/pkg/bridge")

	var findings []string
	for _, pkg := range pkgs {
		for path := range pkg.Imports {
			if strings.HasPrefix(path, modulePath) {
				findings = append(findings, fmt.Sprintf("%s imports %s", pkg.PkgPath, path))
			}
		}
	}
	if len(findings) > 0 {
		t.Fatalf("pkg/bridge must not depend on other module packages:\n%s", strings.Join(findings, "\n"))
	}
}
