package inspect

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
)

// method is one instance method declared directly on a model type,
// discovered by parsing the model package's source. Methods promoted
// from embedded types never appear here because their receiver is the
// embedding type, not the model.
type method struct {
	Name             string
	Receiver         string // receiver identifier, empty when anonymous
	Source           string // full declaration text, signature through closing brace
	ReturnsAttribute bool   // declared result type is model.Attribute
}

// declaredMethods scans every non-test Go file in dir for methods whose
// receiver is exactly typeName, in file name then declaration order.
// Function declarations without a body (assembly stubs) are skipped.
func declaredMethods(dir, typeName string) ([]method, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read model source directory %s: %w", dir, err)
	}

	var methods []method
	fset := token.NewFileSet()

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		path := filepath.Join(dir, name)
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		file, err := parser.ParseFile(fset, path, src, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) != 1 || fn.Body == nil {
				continue
			}
			if receiverTypeName(fn.Recv.List[0].Type) != typeName {
				continue
			}

			m := method{
				Name:             fn.Name.Name,
				ReturnsAttribute: returnsAttribute(fn.Type),
			}
			if names := fn.Recv.List[0].Names; len(names) > 0 && names[0].Name != "_" {
				m.Receiver = names[0].Name
			}

			start := fset.Position(fn.Pos()).Offset
			end := fset.Position(fn.End()).Offset
			m.Source = string(src[start:end])

			methods = append(methods, m)
		}
	}

	return methods, nil
}

// receiverTypeName unwraps a receiver type expression to its base type
// name, looking through pointers and type parameter lists.
func receiverTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return receiverTypeName(t.X)
	case *ast.IndexExpr:
		return receiverTypeName(t.X)
	case *ast.IndexListExpr:
		return receiverTypeName(t.X)
	default:
		return ""
	}
}

// returnsAttribute reports whether the function's single result type is
// the Attribute mutator type, written either as model.Attribute or, from
// inside the model package itself, bare Attribute.
func returnsAttribute(ft *ast.FuncType) bool {
	if ft.Results == nil || len(ft.Results.List) != 1 {
		return false
	}
	switch t := ft.Results.List[0].Type.(type) {
	case *ast.SelectorExpr:
		return t.Sel.Name == "Attribute"
	case *ast.Ident:
		return t.Name == "Attribute"
	default:
		return false
	}
}
