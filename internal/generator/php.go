package generator

import (
	"strings"

	"github.com/seitarof/prototype/internal/model"
	"github.com/seitarof/prototype/internal/resolver"
)

const phpIndent = "    "

type phpTarget struct {
	types resolver.Resolver
}

// NewPHP returns the PHP target. A nil resolver means identity mapping.
func NewPHP(r resolver.Resolver) Target {
	if r == nil {
		r = resolver.New()
	}
	return &phpTarget{types: r}
}

func (g *phpTarget) Name() string { return "php" }

func (g *phpTarget) Ext() string { return ".php" }

func (g *phpTarget) Generate(n model.Node, ctx Context) string {
	switch v := n.(type) {
	case model.Fqn:
		return v.NameWith(`\`)
	case model.TypeRef:
		return g.typeName(v, ctx)
	case *model.Struct:
		return g.fromStruct(v, ctx)
	case *model.Method:
		return g.fromMethod(v, ctx)
	case *model.Argument:
		return g.fromArgument(v, ctx)
	case model.Text:
		return string(v)
	default:
		return ""
	}
}

// typeName renders a type as used inside a body. References use the name
// they were imported under.
func (g *phpTarget) typeName(t model.TypeRef, ctx Context) string {
	switch v := g.types.Resolve(t).(type) {
	case model.TypeRef:
		if v.IsPrimitive() {
			return string(v.Tag())
		}
		return ctx.localName(v.Fqn())
	case model.Text:
		return string(v)
	default:
		return ""
	}
}

func (g *phpTarget) fromStruct(s *model.Struct, ctx Context) string {
	var b strings.Builder
	b.WriteString("<?php\n\n")

	if pkg, ok := s.Package(); ok {
		b.WriteString("namespace " + g.Generate(pkg, ctx) + ";\n\n")
	}

	methods := s.Methods(ctx.Container)
	imports, aliases := phpImports(s, methods)
	if len(imports) > 0 {
		for _, f := range imports {
			line := "use " + g.Generate(f, ctx)
			if alias := aliases[f.Name()]; alias != f.Chunk(-1) {
				line += " as " + alias
			}
			b.WriteString(line + ";\n")
		}
		b.WriteString("\n")
	}

	inner := Context{Enclosing: s, Selected: ctx.Selected, Container: ctx.Container, aliases: aliases}
	if s.IsInterface() {
		b.WriteString("interface " + s.Name())
	} else {
		b.WriteString("class " + s.Name())
		if parent, ok := s.ParentName(); ok {
			b.WriteString(" extends " + inner.localName(parent))
		}
		if s.HasInterfaces() {
			names := make([]string, 0, len(s.Interfaces()))
			for _, i := range s.Interfaces() {
				names = append(names, inner.localName(i))
			}
			b.WriteString(" implements " + strings.Join(names, ", "))
		}
	}
	b.WriteString("\n{\n")

	for _, m := range methods {
		b.WriteString(g.Generate(m, inner))
	}

	b.WriteString("}\n")
	return b.String()
}

func (g *phpTarget) fromMethod(m *model.Method, ctx Context) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(phpIndent + "/**\n")
	b.WriteString(phpIndent + " * Method " + m.Name() + "\n")
	b.WriteString(phpIndent + " *\n")
	for _, a := range m.Arguments() {
		typ := g.typeName(a.Type(), ctx)
		if a.IsArray() {
			typ += "[]"
		}
		b.WriteString(phpIndent + " * @param " + typ + " $" + a.Name() + "\n")
	}
	b.WriteString(phpIndent + " * @return " + g.typeName(m.ReturnType(), ctx) + "\n")
	b.WriteString(phpIndent + " */\n")

	args := make([]string, 0, len(m.Arguments()))
	for _, a := range m.Arguments() {
		args = append(args, g.Generate(a, ctx))
	}
	b.WriteString(phpIndent + "public function " + m.Name() + "(" + strings.Join(args, ", ") + ")")

	if ctx.Enclosing != nil && ctx.Enclosing.IsClass() {
		b.WriteString("\n" + phpIndent + "{\n" + phpIndent + "}\n")
	} else {
		b.WriteString(";\n")
	}
	return b.String()
}

func (g *phpTarget) fromArgument(a *model.Argument, ctx Context) string {
	if a.IsPrimitive() {
		return "$" + a.Name()
	}
	if a.IsArray() {
		return "array $" + a.Name()
	}
	return g.typeName(a.Type(), ctx) + " $" + a.Name()
}

// phpImports returns the distinct structures referenced by s and methods, in
// order of first use, and the local name of each. Short names shared by
// different imports or by s itself are aliased with all their segments
// joined. s never imports itself.
func phpImports(s *model.Struct, methods []*model.Method) ([]model.Fqn, map[string]string) {
	used := s.UsedFqns()
	for _, m := range methods {
		if own, ok := s.Method(m.Name()); ok && own == m {
			continue
		}
		if !m.ReturnType().IsPrimitive() {
			used = append(used, m.ReturnType().Fqn())
		}
		for _, a := range m.Arguments() {
			if !a.IsPrimitive() {
				used = append(used, a.Type().Fqn())
			}
		}
	}

	aliases := map[string]string{s.Fqn().Name(): s.Name()}
	shortNames := map[string]int{s.Name(): 1}
	var imports []model.Fqn
	for _, f := range used {
		if _, ok := aliases[f.Name()]; ok {
			continue
		}
		aliases[f.Name()] = f.Chunk(-1)
		shortNames[f.Chunk(-1)]++
		imports = append(imports, f)
	}
	for _, f := range imports {
		if shortNames[f.Chunk(-1)] > 1 {
			aliases[f.Name()] = strings.Join(f.Chunks(), "")
		}
	}
	return imports, aliases
}
