package model

// Tag is a built-in type or structure kind name.
type Tag string

const (
	TagString    Tag = "string"
	TagInt       Tag = "int"
	TagFloat     Tag = "float"
	TagDouble    Tag = "double"
	TagBool      Tag = "bool"
	TagMixed     Tag = "mixed"
	TagVoid      Tag = "void"
	TagClass     Tag = "class"
	TagInterface Tag = "interface"
)

var primitiveTags = map[Tag]struct{}{
	TagString: {},
	TagInt:    {},
	TagFloat:  {},
	TagDouble: {},
	TagBool:   {},
	TagMixed:  {},
	TagVoid:   {},
}

// IsPrimitive reports whether t names a primitive type (not a structure kind).
func (t Tag) IsPrimitive() bool {
	_, ok := primitiveTags[t]
	return ok
}

// LookupPrimitive returns the primitive tag spelled exactly as name.
func LookupPrimitive(name string) (Tag, bool) {
	t := Tag(name)
	return t, t.IsPrimitive()
}

// TypeRef is either a primitive tag or a reference to a structure.
type TypeRef struct {
	tag Tag
	fqn Fqn
}

// Primitive builds a TypeRef holding a tag.
func Primitive(tag Tag) TypeRef {
	return TypeRef{tag: tag}
}

// Reference builds a TypeRef pointing at a structure.
func Reference(fqn Fqn) TypeRef {
	return TypeRef{fqn: fqn}
}

// ParseType resolves a primitive tag verbatim and wraps anything else into an Fqn.
func ParseType(name string) TypeRef {
	if tag, ok := LookupPrimitive(name); ok {
		return Primitive(tag)
	}
	return Reference(NewFqn(name))
}

// IsPrimitive reports whether the type is a tag rather than an Fqn.
func (t TypeRef) IsPrimitive() bool {
	return t.tag != ""
}

// Tag returns the primitive tag, or "" for references.
func (t TypeRef) Tag() Tag {
	return t.tag
}

// Fqn returns the referenced name; zero value for primitives.
func (t TypeRef) Fqn() Fqn {
	return t.fqn
}

func (t TypeRef) String() string {
	if t.IsPrimitive() {
		return string(t.tag)
	}
	return t.fqn.Name()
}
