package model

import "strings"

// Fqn is a fully qualified, dot separated name of a structure or package.
type Fqn struct {
	name   string
	chunks []string
}

var fqnReplacer = strings.NewReplacer("/", ".", "\\", ".")

// NewFqn normalizes slashes and backslashes to dots and trims whitespace.
func NewFqn(name string) Fqn {
	n := strings.TrimSpace(fqnReplacer.Replace(name))
	return Fqn{name: n, chunks: strings.Split(n, ".")}
}

// Name returns the dotted name.
func (f Fqn) Name() string {
	return f.name
}

// NameWith joins the segments with sep.
func (f Fqn) NameWith(sep string) string {
	if sep == "" || sep == "." {
		return f.name
	}
	return strings.Join(f.chunks, sep)
}

// IsEmpty reports whether the normalized name is "".
func (f Fqn) IsEmpty() bool {
	return f.name == ""
}

// Size returns the number of segments.
func (f Fqn) Size() int {
	return len(f.chunks)
}

// Chunk returns the segment at offset. Any offset outside [0, Size())
// returns the last segment, so Chunk(-1) is the leaf name.
func (f Fqn) Chunk(offset int) string {
	if len(f.chunks) == 0 {
		return ""
	}
	if offset < 0 || offset >= len(f.chunks) {
		return f.chunks[len(f.chunks)-1]
	}
	return f.chunks[offset]
}

// Chunks returns a copy of the segments.
func (f Fqn) Chunks() []string {
	return append([]string(nil), f.chunks...)
}

// Parent drops the last segment.
func (f Fqn) Parent() Fqn {
	switch len(f.chunks) {
	case 0:
		return f
	case 1:
		return NewFqn("")
	default:
		return NewFqn(strings.Join(f.chunks[:len(f.chunks)-1], "."))
	}
}

// Equal compares normalized names.
func (f Fqn) Equal(other Fqn) bool {
	return f.name == other.name
}

func (f Fqn) String() string {
	return f.name
}
