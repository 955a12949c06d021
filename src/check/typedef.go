package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkTypeDefStmt registers a new struct or alias type under s.Name,
// making it resolvable by name for every statement that follows it in
// program order (forward references across an earlier type are not
// supported, matching the original checker's single-pass name
// resolution).
func (c *Checker) checkTypeDefStmt(ctx *scope.Context, s ast.TypeDefStmt) (types.TypeId, error) {
	if _, exists := c.namedTypes[s.Name.Text]; exists {
		return 0, diag.NewUnknownType(s.Rg, s.Name.Text+" (redefined)")
	}
	if s.Struct != nil {
		fields := make([]types.FieldType, len(s.Struct.Fields))
		for i, f := range s.Struct.Fields {
			t, err := c.resolveTypeExpr(ctx, f.Type)
			if err != nil {
				return 0, err
			}
			fields[i] = types.FieldType{Name: f.Name.Text, Type: t}
		}
		id := ctx.TypeStore.Add(types.Type{Kind: types.KStruct, Struct: &types.StructType{Name: s.Name.Text, Fields: fields}})
		c.namedTypes[s.Name.Text] = id
		return types.Void, nil
	}
	of, err := c.resolveTypeExpr(ctx, s.Alias)
	if err != nil {
		return 0, err
	}
	id := ctx.TypeStore.Add(types.Type{Kind: types.KAlias, Alias: &types.AliasType{Name: s.Name.Text, Of: of}})
	c.namedTypes[s.Name.Text] = id
	return types.Void, nil
}
