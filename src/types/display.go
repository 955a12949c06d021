package types

import "strconv"

var primitiveNames = [numPrimitives]string{
	Void:    "void",
	Bool:    "bool",
	Str:     "str",
	String:  "string",
	Char:    "char",
	I8:      "i8",
	I16:     "i16",
	I32:     "i32",
	I64:     "i64",
	Isize:   "isize",
	U8:      "u8",
	U16:     "u16",
	U32:     "u32",
	U64:     "u64",
	Usize:   "usize",
	F32:     "f32",
	F64:     "f64",
	Nothing: "nothing",
}

// Display renders id as source-like text. It never mutates s: displaying a
// type can never allocate a new TypeId.
func Display(s *Store, id TypeId) string {
	t := s.Get(id)
	switch t.Kind {
	case KPrimitive:
		return primitiveNames[t.Primitive]
	case KInferInt:
		return "{integer}"
	case KInferFloat:
		return "{float}"
	case KBorrow:
		if t.Borrow.Mutable {
			return "&mut " + Display(s, t.Borrow.Of)
		}
		return "&" + Display(s, t.Borrow.Of)
	case KStruct:
		return t.Struct.Name
	case KFn:
		out := "fn("
		for i, p := range t.Fn.Params {
			if i > 0 {
				out += ", "
			}
			out += Display(s, p)
		}
		out += ") -> " + Display(s, t.Fn.Ret)
		return out
	case KAlias:
		return t.Alias.Name
	default:
		return "<type#" + strconv.FormatUint(uint64(id), 10) + ">"
	}
}
