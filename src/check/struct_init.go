package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkStructInitExpr requires the field set of e to exactly match the
// struct definition's field set: every declared field must be
// initialized exactly once, no more, no less.
func (c *Checker) checkStructInitExpr(ctx *scope.Context, e ast.StructInitExpr) (types.TypeId, error) {
	structID, ok := c.namedTypes[e.Type.Text]
	if !ok {
		return 0, diag.NewUnknownType(e.Rg, e.Type.Text)
	}
	st := ctx.TypeStore.Get(structID)
	if st.Kind != types.KStruct {
		return 0, diag.NewTypeMismatch(e.Rg, "struct", types.Display(ctx.TypeStore, structID))
	}

	seen := make(map[string]bool, len(e.Fields))
	for _, fi := range e.Fields {
		if seen[fi.Name.Text] {
			return 0, diag.NewDuplicateFieldInit(fi.Name.Range, fi.Name.Text)
		}
		seen[fi.Name.Text] = true

		var fieldType types.TypeId
		found := false
		for _, f := range st.Struct.Fields {
			if f.Name == fi.Name.Text {
				fieldType, found = f.Type, true
				break
			}
		}
		if !found {
			return 0, diag.NewUnknownIdent(fi.Name.Range, fi.Name.Text)
		}
		valueType, err := c.checkExpr(ctx, fi.Value)
		if err != nil {
			return 0, err
		}
		resolved, ok := resolveInferred(ctx.TypeStore, valueType, &fieldType)
		if !ok || !assignable(ctx.TypeStore, resolved, fieldType) {
			return 0, diag.NewTypeMismatch(fi.Name.Range, types.Display(ctx.TypeStore, fieldType), types.Display(ctx.TypeStore, valueType))
		}
	}
	for _, f := range st.Struct.Fields {
		if !seen[f.Name] {
			return 0, diag.NewMissingFieldInit(e.Rg, f.Name)
		}
	}
	return structID, nil
}
