package analysis

import (
	"neksis/internal/ast"
)

// Symbol identifies a function by module path and name. Keying the call graph
// on the pair avoids silent node overwrites between same-named functions in
// different modules; duplicates within one module are last write wins.
type Symbol struct {
	Module string
	Name   string
}

func (s Symbol) String() string {
	if s.Module == "" {
		return s.Name
	}
	return s.Module + "::" + s.Name
}

// FunctionSymbol builds the symbol for a function declared in the given module.
func FunctionSymbol(module string, fn *ast.Function) Symbol {
	return Symbol{Module: module, Name: fn.Name.Value}
}
