package model

// Method is a named signature with a return type and ordered arguments.
type Method struct {
	name    string
	returns TypeRef
	args    []*Argument
}

// NewMethod creates a method. Nil arguments are dropped.
func NewMethod(name string, returns TypeRef, args ...*Argument) *Method {
	kept := make([]*Argument, 0, len(args))
	for _, a := range args {
		if a != nil {
			kept = append(kept, a)
		}
	}
	return &Method{name: name, returns: returns, args: kept}
}

// Name returns the method name.
func (m *Method) Name() string { return m.name }

// ReturnType returns the declared return type.
func (m *Method) ReturnType() TypeRef { return m.returns }

// Arguments returns a copy of the argument list.
func (m *Method) Arguments() []*Argument {
	return append([]*Argument(nil), m.args...)
}

func (m *Method) String() string { return m.name }
