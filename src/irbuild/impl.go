package irbuild

import "github.com/yazaldefilimone/lemon/src/ast"

// buildImplStmt lowers each method in an impl block as an ordinary
// function named "Self.method", matching how the checker registers the
// same qualified name for AssociateExpr resolution.
func (b *Builder) buildImplStmt(s ast.ImplStmt) error {
	for _, item := range s.Items {
		switch fn := item.(type) {
		case ast.FnStmt:
			ret, err := b.resolveTypeExpr(fn.Ret)
			if err != nil {
				return err
			}
			if err := b.buildFunction(s.Self.Text+"."+fn.Name.Text, fn.Params, ret, fn.Body); err != nil {
				return err
			}
		case ast.ConstFnStmt:
			ret, err := b.resolveTypeExpr(fn.Ret)
			if err != nil {
				return err
			}
			if err := b.buildFunction(s.Self.Text+"."+fn.Name.Text, fn.Params, ret, fn.Body); err != nil {
				return err
			}
		}
	}
	return nil
}
