package model

// Argument is one method parameter.
type Argument struct {
	typ     TypeRef
	name    string
	isArray bool
}

// NewArgument creates an argument. isArray marks an array of typ.
func NewArgument(typ TypeRef, name string, isArray bool) *Argument {
	return &Argument{typ: typ, name: name, isArray: isArray}
}

// Type returns the argument type.
func (a *Argument) Type() TypeRef { return a.typ }

// Name returns the argument name.
func (a *Argument) Name() string { return a.name }

// IsArray reports whether the argument holds an array of Type().
func (a *Argument) IsArray() bool { return a.isArray }

// IsPrimitive reports whether Type() is a primitive tag.
func (a *Argument) IsPrimitive() bool { return a.typ.IsPrimitive() }

func (a *Argument) String() string { return a.name }
