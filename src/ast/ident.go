package ast

// Ident is a bare name occurrence: a variable, field, function or type
// reference as written in source. Equality is textual.
type Ident struct {
	Range Range
	Text  string
}

func (id Ident) Equal(other Ident) bool {
	return id.Text == other.Text
}

func (id Ident) String() string {
	return id.Text
}
