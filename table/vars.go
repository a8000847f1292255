package table

import (
	"slices"

	"github.com/crillab/gophertable/bf"
)

// Variables returns the names of all variables referenced in prog,
// sorted in ascending order and without duplicates.
// Every referenced name is considered a free input, including names the program assigns.
func Variables(prog bf.Program) []string {
	var vars []string
	for _, stmt := range prog {
		bf.Walk(stmt.Expr, func(e bf.Expr) {
			if name, ok := bf.VarName(e); ok {
				vars = append(vars, name)
			}
		})
	}
	slices.Sort(vars)
	return slices.Compact(vars)
}
