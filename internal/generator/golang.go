package generator

import (
	"bytes"
	"embed"
	"go/token"
	"slices"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/seitarof/prototype/internal/model"
	"github.com/seitarof/prototype/internal/resolver"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

const defaultGoPackage = "model"

type goTarget struct {
	types resolver.Resolver
	pkg   string
	tmpl  *template.Template
}

type goStructData struct {
	Package     string
	Name        string
	Fqn         string
	IsInterface bool
	Embeds      []string
	Asserts     []string
	Methods     []goMethod
}

type goMethod struct {
	Receiver  string
	Signature string
}

// NewGo returns the Go target. All structures of a run share one package
// and one directory: pkg when set, else the namespace they all have in
// common, else "model". References to structures outside the run become
// any.
func NewGo(r resolver.Resolver, pkg string) Target {
	if r == nil {
		r = resolver.New(resolver.GoRules()...)
	}
	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.go.tmpl"))
	return &goTarget{types: r, pkg: pkg, tmpl: tmpl}
}

func (g *goTarget) Name() string { return "go" }

func (g *goTarget) Ext() string { return ".go" }

// Path keeps every file of the package in the output root.
func (g *goTarget) Path(s *model.Struct) string {
	return strings.ToLower(exportName(s.Name())) + g.Ext()
}

func (g *goTarget) Generate(n model.Node, ctx Context) string {
	switch v := n.(type) {
	case model.Fqn:
		return exportName(v.Chunk(-1))
	case model.TypeRef:
		return g.typeName(v, ctx)
	case *model.Struct:
		return g.fromStruct(v, ctx)
	case *model.Method:
		return g.signature(v, ctx)
	case *model.Argument:
		return goIdent(v.Name()) + " " + g.argumentType(v, ctx)
	case model.Text:
		return string(v)
	default:
		return ""
	}
}

func (g *goTarget) typeName(t model.TypeRef, ctx Context) string {
	switch v := g.types.Resolve(t).(type) {
	case model.TypeRef:
		if v.IsPrimitive() {
			return "any"
		}
		if !ctx.generated(v.Fqn()) {
			return "any"
		}
		return exportName(v.Fqn().Chunk(-1))
	case model.Text:
		return string(v)
	default:
		return ""
	}
}

func (g *goTarget) fromStruct(s *model.Struct, ctx Context) string {
	data := goStructData{
		Package:     g.packageName(s, ctx),
		Name:        exportName(s.Name()),
		Fqn:         s.Fqn().Name(),
		IsInterface: s.IsInterface(),
	}

	embedded := map[string]bool{}
	addEmbed := func(f model.Fqn, wantInterface bool) {
		if sup, ok := ctx.selected(f); ok && sup.IsInterface() == wantInterface && !embedded[f.Name()] {
			embedded[f.Name()] = true
			data.Embeds = append(data.Embeds, g.Generate(f, ctx))
		}
	}
	if parent, ok := s.ParentName(); ok {
		addEmbed(parent, s.IsInterface())
	}
	for _, i := range s.Interfaces() {
		if s.IsInterface() {
			addEmbed(i, true)
			continue
		}
		if sup, ok := ctx.selected(i); ok && sup.IsInterface() && ctx.Container != nil {
			data.Asserts = append(data.Asserts, g.Generate(i, ctx))
		}
	}

	fields := map[string]bool{}
	if !s.IsInterface() {
		for _, e := range data.Embeds {
			fields[e] = true
		}
	}
	seen := map[string]bool{}
	for _, m := range g.methodSet(s, ctx.Container, embedded) {
		name := exportName(m.Name())
		if seen[name] || fields[name] {
			continue
		}
		seen[name] = true
		data.Methods = append(data.Methods, goMethod{
			Receiver:  receiverName(data.Name, paramNames(m)),
			Signature: g.signature(m, ctx),
		})
	}

	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, "struct.go.tmpl", data); err != nil {
		return "// template: " + err.Error() + "\n"
	}
	return buf.String()
}

// methodSet lists the own methods of s followed by every method reachable
// through its supertypes in c, each supertype visited once. Direct
// supertypes in skip are not walked since their methods are promoted.
func (g *goTarget) methodSet(s *model.Struct, c *model.Container, skip map[string]bool) []*model.Method {
	var out []*model.Method
	visited := map[string]bool{s.Fqn().Name(): true}

	var walk func(cur *model.Struct, top bool)
	walk = func(cur *model.Struct, top bool) {
		out = append(out, cur.Methods(nil)...)
		if c == nil {
			return
		}
		var supers []model.Fqn
		if parent, ok := cur.ParentName(); ok {
			supers = append(supers, parent)
		}
		supers = append(supers, cur.Interfaces()...)
		for _, f := range supers {
			if visited[f.Name()] || (top && skip[f.Name()]) {
				continue
			}
			visited[f.Name()] = true
			if next, ok := c.Get(f); ok {
				walk(next, false)
			}
		}
	}
	walk(s, true)
	return out
}

func (g *goTarget) signature(m *model.Method, ctx Context) string {
	names := paramNames(m)
	args := make([]string, 0, len(names))
	for i, a := range m.Arguments() {
		args = append(args, names[i]+" "+g.argumentType(a, ctx))
	}
	sig := exportName(m.Name()) + "(" + strings.Join(args, ", ") + ")"
	if ret := g.typeName(m.ReturnType(), ctx); ret != "" {
		sig += " " + ret
	}
	return sig
}

func (g *goTarget) argumentType(a *model.Argument, ctx Context) string {
	typ := g.typeName(a.Type(), ctx)
	if typ == "" {
		typ = "any"
	}
	if a.IsArray() {
		typ = "[]" + typ
	}
	return typ
}

func (g *goTarget) packageName(s *model.Struct, ctx Context) string {
	if g.pkg != "" {
		return g.pkg
	}
	pkg, ok := s.Package()
	if !ok {
		return defaultGoPackage
	}
	if ctx.Selected != nil {
		for _, other := range ctx.Selected.All() {
			if p, _ := other.Package(); !p.Equal(pkg) {
				return defaultGoPackage
			}
		}
	}
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, pkg.Chunk(-1))
	if name == "" || !unicode.IsLetter([]rune(name)[0]) || token.IsKeyword(name) {
		return defaultGoPackage
	}
	return name
}

// paramNames returns the Go identifiers of m's arguments, unique within the
// signature.
func paramNames(m *model.Method) []string {
	used := map[string]bool{}
	names := make([]string, 0, len(m.Arguments()))
	for _, a := range m.Arguments() {
		name := goIdent(a.Name())
		for used[name] {
			name += "_"
		}
		used[name] = true
		names = append(names, name)
	}
	return names
}

func receiverName(typeName string, params []string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	name := "recv"
	if unicode.IsLetter(r) {
		name = string(unicode.ToLower(r))
	}
	for slices.Contains(params, name) {
		name += "_"
	}
	return name
}

func exportName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

func goIdent(name string) string {
	if token.IsKeyword(name) {
		return name + "_"
	}
	return name
}
