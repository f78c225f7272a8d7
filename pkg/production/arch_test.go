package production_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestProductionImportsOnly verifies pkg/production only imports allowed
// packages. The Golden Rule: pkg/production imports ONLY pkg/backend and
// stdlib, so the equation generators stay embeddable in any model-assembly
// layer.
func TestProductionImportsOnly(t *testing.T) {
	allowedExternal := map[string]bool{
		"github.com/opencge/cgegen/pkg/backend": true,
	}

	fset := token.NewFileSet()
	dir := "."

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read production directory: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		if strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			continue
		}

		for _, imp := range f.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)

			// Allow stdlib (no dots in path)
			if !strings.Contains(importPath, ".") {
				continue
			}

			if !allowedExternal[importPath] {
				t.Errorf("%s imports forbidden package: %s", entry.Name(), importPath)
			}
		}
	}
}

// TestProductionDoesNotImportInternal verifies pkg/production doesn't
// import any internal packages.
func TestProductionDoesNotImportInternal(t *testing.T) {
	fset := token.NewFileSet()
	dir := "."

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read production directory: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		if strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			continue
		}

		for _, imp := range f.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)

			if strings.Contains(importPath, "/internal/") {
				t.Errorf("%s imports internal package: %s (production must not import internal packages)", entry.Name(), importPath)
			}
		}
	}
}
