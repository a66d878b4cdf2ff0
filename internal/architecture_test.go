package internal_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestStoreImportRestrictions keeps the store at the bottom of the
// stack: it must not reach up into event processing or the catalog.
func TestStoreImportRestrictions(t *testing.T) {
	allowedPrefixes := []string{
		"explodata/internal/log",
	}
	checkImports(t, "./database", allowedPrefixes, nil)
}

// TestLeafPackages ensures the taxonomy and region classifiers stay
// dependency-free lookup tables.
func TestLeafPackages(t *testing.T) {
	for _, dir := range []string{"./bio", "./galaxy"} {
		checkImports(t, dir, []string{}, []string{"explodata/internal"})
	}
}

// TestCatalogImportRestrictions ensures catalog enrichment never
// depends on journal replay; they share only the store.
func TestCatalogImportRestrictions(t *testing.T) {
	forbiddenPrefixes := []string{
		"explodata/internal/journal",
	}
	checkImports(t, "./edsm", nil, forbiddenPrefixes)
}

func checkImports(t *testing.T, packageDir string, allowedPrefixes, forbiddenPrefixes []string) {
	err := filepath.Walk(packageDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		fset := token.NewFileSet()
		node, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			return nil
		}

		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)

			if !strings.Contains(importPath, "explodata/internal") {
				continue
			}

			for _, forbidden := range forbiddenPrefixes {
				if strings.HasPrefix(importPath, forbidden) {
					t.Errorf("FORBIDDEN import in %s: %s", path, importPath)
				}
			}

			if allowedPrefixes != nil {
				allowed := false
				for _, prefix := range allowedPrefixes {
					if strings.HasPrefix(importPath, prefix) {
						allowed = true
						break
					}
				}
				if !allowed {
					t.Errorf("DISALLOWED import in %s: %s (not in allowed list)", path, importPath)
				}
			}
		}

		return nil
	})

	if err != nil {
		t.Errorf("Failed to walk directory %s: %v", packageDir, err)
	}
}
