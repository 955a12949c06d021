package check

import "github.com/yazaldefilimone/lemon/src/types"

func widthOf(id types.TypeId) uint8 {
	switch id {
	case types.I8, types.U8:
		return 8
	case types.I16, types.U16:
		return 16
	case types.I32, types.U32:
		return 32
	case types.I64, types.U64, types.Isize, types.Usize:
		return 64
	default:
		return 0
	}
}

// inferIntType collapses an InferInt literal of the given bit width to a
// concrete integer TypeId. When expected names a concrete integer
// primitive, the literal must fit within it (bits <= width(expected));
// the function returns that exact primitive or fails. When expected is
// nil, it always defaults to I32, matching infer_no_type_anotation.
func inferIntType(bits uint8, expected *types.TypeId) (types.TypeId, bool) {
	if expected != nil {
		if (*expected).IsSignedInt() || (*expected).IsUnsignedInt() {
			if bits <= widthOf(*expected) {
				return *expected, true
			}
			return 0, false
		}
		return 0, false
	}
	return types.I32, true
}

// inferFloatType collapses an InferFloat literal to a concrete float
// TypeId, defaulting to F64 when there is no expected type, matching
// infer_no_type_anotation.
func inferFloatType(bits uint8, expected *types.TypeId) (types.TypeId, bool) {
	if expected != nil {
		if (*expected).IsFloat() {
			if bits <= widthOfFloat(*expected) {
				return *expected, true
			}
			return 0, false
		}
		return 0, false
	}
	return types.F64, true
}

func widthOfFloat(id types.TypeId) uint8 {
	switch id {
	case types.F32:
		return 32
	case types.F64:
		return 64
	default:
		return 0
	}
}

// resolveInferred collapses t if it is an InferInt/InferFloat entry in
// store against an optional expected type, returning the concrete TypeId
// it resolves to. Concrete types pass through unchanged.
func resolveInferred(store *types.Store, t types.TypeId, expected *types.TypeId) (types.TypeId, bool) {
	ty := store.Get(t)
	switch ty.Kind {
	case types.KInferInt:
		return inferIntType(ty.InferBits, expected)
	case types.KInferFloat:
		return inferFloatType(ty.InferBits, expected)
	default:
		return t, true
	}
}
