package semantic_analyzer

import (
	"fmt"

	"github.com/kievzenit/blockc/internal/types"
)

type RedeclarationError struct {
	Name         string
	Declared     types.Type
	DeclaredLine int
	Redeclared   types.Type
}

func (e *RedeclarationError) Error() string {
	return fmt.Sprintf("Variable '%s' already declared as '%s' at line %d, cannot redeclare as '%s'",
		e.Name, e.Declared.Type(), e.DeclaredLine, e.Redeclared.Type())
}

type UndeclaredError struct {
	Name string
	// InExpression is set when the name was read inside an expression
	// rather than assigned to.
	InExpression bool
}

func (e *UndeclaredError) Error() string {
	if e.InExpression {
		return fmt.Sprintf("Identifier '%s' used before declaration", e.Name)
	}
	return fmt.Sprintf("Variable '%s' not declared", e.Name)
}

type TypeMismatchError struct {
	Name     string
	Declared types.Type
	Assigned types.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Type mismatch: variable '%s' declared as '%s' but assigned '%s'",
		e.Name, e.Declared.Type(), e.Assigned.Type())
}
