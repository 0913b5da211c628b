package model

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidArgument reports misuse of the IR builder methods.
var ErrInvalidArgument = errors.New("invalid argument")

// Struct is a class or interface.
type Struct struct {
	fqn        Fqn
	name       string
	kind       Tag
	pkg        Fqn
	base       *Fqn
	interfaces []Fqn

	methodOrder []string
	methods     map[string]*Method
}

// NewClass creates a class. An empty base means no parent; empty
// interface names are skipped.
func NewClass(fqn Fqn, base Fqn, interfaces ...Fqn) *Struct {
	return newStruct(TagClass, fqn, base, interfaces)
}

// NewInterface creates an interface. The base is kept as given even though
// generators ignore it for interfaces.
func NewInterface(fqn Fqn, base Fqn, interfaces ...Fqn) *Struct {
	return newStruct(TagInterface, fqn, base, interfaces)
}

func newStruct(kind Tag, fqn Fqn, base Fqn, interfaces []Fqn) *Struct {
	s := &Struct{
		fqn:     fqn,
		name:    fqn.Chunk(-1),
		kind:    kind,
		pkg:     fqn.Parent(),
		methods: map[string]*Method{},
	}
	if !base.IsEmpty() {
		b := base
		s.base = &b
	}
	for _, i := range interfaces {
		if i.IsEmpty() {
			continue
		}
		s.interfaces = append(s.interfaces, i)
	}
	return s
}

// Fqn returns the fully qualified name.
func (s *Struct) Fqn() Fqn { return s.fqn }

// Name returns the short name (last Fqn segment at construction).
func (s *Struct) Name() string { return s.name }

// Kind returns TagClass or TagInterface.
func (s *Struct) Kind() Tag { return s.kind }

// IsClass reports whether the structure is a class.
func (s *Struct) IsClass() bool { return s.kind == TagClass }

// IsInterface reports whether the structure is an interface.
func (s *Struct) IsInterface() bool { return s.kind == TagInterface }

// Package returns the parent Fqn and false when the structure has no package.
func (s *Struct) Package() (Fqn, bool) {
	return s.pkg, !s.pkg.IsEmpty()
}

// HasParent reports whether a base structure is set.
func (s *Struct) HasParent() bool { return s.base != nil }

// ParentName returns the base structure reference, if any.
func (s *Struct) ParentName() (Fqn, bool) {
	if s.base == nil {
		return Fqn{}, false
	}
	return *s.base, true
}

// HasInterfaces reports whether at least one interface is implemented.
func (s *Struct) HasInterfaces() bool { return len(s.interfaces) > 0 }

// Interfaces returns the implemented interfaces in declaration order.
func (s *Struct) Interfaces() []Fqn {
	return append([]Fqn(nil), s.interfaces...)
}

// UsedFqns lists every structure reference in textual order: parent,
// interfaces, then per own method the return type and argument types.
// Repeats are kept.
func (s *Struct) UsedFqns() []Fqn {
	var used []Fqn
	if s.base != nil {
		used = append(used, *s.base)
	}
	used = append(used, s.interfaces...)
	for _, m := range s.Methods(nil) {
		if !m.ReturnType().IsPrimitive() {
			used = append(used, m.ReturnType().Fqn())
		}
		for _, a := range m.Arguments() {
			if !a.IsPrimitive() {
				used = append(used, a.Type().Fqn())
			}
		}
	}
	return used
}

// Methods returns own methods in insertion order. With a container, the
// parent's own methods and each resolvable interface's own methods follow.
// Resolution is one level deep.
func (s *Struct) Methods(c *Container) []*Method {
	methods := make([]*Method, 0, len(s.methodOrder))
	for _, name := range s.methodOrder {
		methods = append(methods, s.methods[name])
	}
	if c == nil {
		return methods
	}
	if s.base != nil {
		if parent, ok := c.Get(*s.base); ok {
			methods = append(methods, parent.Methods(nil)...)
		}
	}
	for _, i := range s.interfaces {
		if iface, ok := c.Get(i); ok {
			methods = append(methods, iface.Methods(nil)...)
		}
	}
	return methods
}

// Method looks up an own method by name.
func (s *Struct) Method(name string) (*Method, bool) {
	m, ok := s.methods[name]
	return m, ok
}

// AddMethod inserts m, replacing any method with the same name in place.
func (s *Struct) AddMethod(m *Method) error {
	if m == nil {
		return fmt.Errorf("add method to %s: %w: nil method", s.fqn, ErrInvalidArgument)
	}
	if _, ok := s.methods[m.Name()]; !ok {
		s.methodOrder = append(s.methodOrder, m.Name())
	}
	s.methods[m.Name()] = m
	return nil
}

// Getter adds a zero-argument get<Name> method returning the argument type.
func (s *Struct) Getter(arg *Argument) error {
	if arg == nil {
		return fmt.Errorf("getter on %s: %w: nil argument", s.fqn, ErrInvalidArgument)
	}
	return s.AddMethod(NewMethod("get"+capitalize(arg.Name()), arg.Type()))
}

// Setter adds a void set<Name> method taking the argument.
func (s *Struct) Setter(arg *Argument) error {
	if arg == nil {
		return fmt.Errorf("setter on %s: %w: nil argument", s.fqn, ErrInvalidArgument)
	}
	param := NewArgument(arg.Type(), arg.Name(), arg.IsArray())
	return s.AddMethod(NewMethod("set"+capitalize(arg.Name()), Primitive(TagVoid), param))
}

func (s *Struct) String() string { return s.fqn.String() }

func capitalize(str string) string {
	r, size := utf8.DecodeRuneInString(str)
	if r == utf8.RuneError {
		return str
	}
	return string(unicode.ToUpper(r)) + str[size:]
}
