package diag

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yazaldefilimone/lemon/src/ast"
)

func TestDiagErrorReturnsMessage(t *testing.T) {
	d := NewUnknownIdent(ast.Range{}, "foo")
	require.Equal(t, "unknown identifier foo", d.Error())

	var err error = d
	require.Equal(t, d.Message, err.Error())
}

func TestDiagConstructorsSetKindAndSecondary(t *testing.T) {
	primary := ast.Range{Start: 0, End: 3}
	conflict := ast.Range{Start: 10, End: 13}

	d := NewBorrowConflict(primary, conflict, "x")
	require.Equal(t, BorrowConflict, d.Kind)
	require.Equal(t, primary, d.Primary)
	require.Equal(t, []ast.Range{conflict}, d.Secondary)

	ice := NewICE(ast.Range{}, "unreachable")
	require.Equal(t, ICE, ice.Kind)
	require.Contains(t, ice.Message, "internal compiler error")
}

func TestKindString(t *testing.T) {
	require.Equal(t, "type-mismatch", TypeMismatch.String())
	require.Equal(t, "internal-compiler-error", ICE.String())
	require.Equal(t, "unknown-diagnostic", Kind(999).String())
}
