// Package loader defines the interface the checker consumes to resolve
// imports. No implementation lives here: file I/O and module path
// resolution are the caller's concern, not the checker's.
package loader

import "github.com/yazaldefilimone/lemon/src/ast"

// Loader is consumed by the checker: check.New stores the Loader it is
// given in Checker.Loader, and src/check/import.go calls only these two
// methods on it.
type Loader interface {
	// GetAST returns the already-parsed Program for mod. The checker never
	// parses source itself.
	GetAST(mod ast.ModID) (ast.Program, error)

	// ResolveImport resolves path, written in a statement of base, to the
	// ModID it names.
	ResolveImport(base ast.ModID, path string) (ast.ModID, error)
}
