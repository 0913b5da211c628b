package model

// Container is a registry of structures keyed by Fqn name.
type Container struct {
	order      []string
	structures map[string]*Struct
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return &Container{structures: map[string]*Struct{}}
}

// Has reports whether a structure named fqn is stored.
func (c *Container) Has(fqn Fqn) bool {
	_, ok := c.structures[fqn.Name()]
	return ok
}

// HasName is Has for a raw name.
func (c *Container) HasName(name string) bool {
	return c.Has(NewFqn(name))
}

// Get returns the structure named fqn.
func (c *Container) Get(fqn Fqn) (*Struct, bool) {
	s, ok := c.structures[fqn.Name()]
	return s, ok
}

// GetName is Get for a raw name.
func (c *Container) GetName(name string) (*Struct, bool) {
	return c.Get(NewFqn(name))
}

// Put stores s under its own Fqn. An existing entry is replaced in place.
func (c *Container) Put(s *Struct) *Container {
	if s == nil {
		return c
	}
	key := s.Fqn().Name()
	if _, ok := c.structures[key]; !ok {
		c.order = append(c.order, key)
	}
	c.structures[key] = s
	return c
}

// Size returns the number of distinct names stored.
func (c *Container) Size() int {
	return len(c.order)
}

// Names returns stored names in first-insertion order.
func (c *Container) Names() []string {
	return append([]string(nil), c.order...)
}

// All returns stored structures in first-insertion order.
func (c *Container) All() []*Struct {
	out := make([]*Struct, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.structures[key])
	}
	return out
}
