package semantic_analyzer

import (
	"github.com/kievzenit/blockc/internal/ast"
	"github.com/kievzenit/blockc/internal/types"
)

type TypeResolver struct {
	builtinTypesMap map[string]types.Type

	sa *SemanticAnalyzer
}

func NewTypeResolver(sa *SemanticAnalyzer) *TypeResolver {
	tr := &TypeResolver{
		builtinTypesMap: make(map[string]types.Type),
		sa:              sa,
	}
	tr.defineBuiltInTypes()
	return tr
}

func (tr *TypeResolver) defineBuiltInTypes() {
	for _, keyword := range []string{"int", "string", "boolean"} {
		t, _ := types.FromKeyword(keyword)
		tr.builtinTypesMap[keyword] = t
	}
}

func (tr *TypeResolver) GetBuiltInType(name string) (types.Type, bool) {
	t, ok := tr.builtinTypesMap[name]
	if !ok {
		return types.Unknown, false
	}
	return t, true
}

// ExprType computes the static type of an expression node. Identifiers
// take the type of their resolution from the current scope; anything that
// cannot be resolved is unknown.
func (tr *TypeResolver) ExprType(expr *ast.Node) types.Type {
	if expr == nil {
		return types.Unknown
	}

	switch expr.Kind {
	case ast.IntExprNode, ast.IntegerLiteralNode:
		return types.Int
	case ast.BoolExprNode, ast.BoolValNode:
		return types.Boolean
	case ast.StringExprNode, ast.StringLiteralNode:
		return types.String
	case ast.IdentifierNode:
		entry, ok := tr.sa.Resolve(expr.Value)
		if !ok {
			return types.Unknown
		}
		return entry.Type
	default:
		return types.Unknown
	}
}
