package model

// Node is any IR value a generator can render. The set is closed:
// Fqn, TypeRef, *Struct, *Method, *Argument and Text.
type Node interface {
	irNode()
}

// Text is already rendered output; generators pass it through unchanged.
type Text string

func (Fqn) irNode()       {}
func (TypeRef) irNode()   {}
func (*Struct) irNode()   {}
func (*Method) irNode()   {}
func (*Argument) irNode() {}
func (Text) irNode()      {}
