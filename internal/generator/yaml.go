package generator

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/seitarof/prototype/internal/model"
)

type yamlTarget struct{}

type yamlStruct struct {
	Fqn        string       `yaml:"fqn"`
	Kind       string       `yaml:"kind"`
	Name       string       `yaml:"name"`
	Package    string       `yaml:"package,omitempty"`
	Extends    string       `yaml:"extends,omitempty"`
	Implements []string     `yaml:"implements,omitempty"`
	Uses       []string     `yaml:"uses,omitempty"`
	Methods    []yamlMethod `yaml:"methods,omitempty"`
}

type yamlMethod struct {
	Name      string         `yaml:"name"`
	Returns   string         `yaml:"returns"`
	Arguments []yamlArgument `yaml:"arguments,omitempty"`
}

type yamlArgument struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Array bool   `yaml:"array,omitempty"`
}

// NewYAML returns a target that dumps the IR itself, one document per
// structure.
func NewYAML() Target {
	return &yamlTarget{}
}

func (g *yamlTarget) Name() string { return "yaml" }

func (g *yamlTarget) Ext() string { return ".yaml" }

func (g *yamlTarget) Generate(n model.Node, ctx Context) string {
	switch v := n.(type) {
	case model.Fqn:
		return v.Name()
	case model.TypeRef:
		return v.String()
	case *model.Struct:
		return "---\n" + encodeYAML(toYAMLStruct(v, ctx.Container))
	case *model.Method:
		return encodeYAML(toYAMLMethod(v))
	case *model.Argument:
		return encodeYAML(toYAMLArgument(v))
	case model.Text:
		return string(v)
	default:
		return ""
	}
}

func toYAMLStruct(s *model.Struct, c *model.Container) yamlStruct {
	out := yamlStruct{
		Fqn:  s.Fqn().Name(),
		Kind: string(s.Kind()),
		Name: s.Name(),
	}
	if pkg, ok := s.Package(); ok {
		out.Package = pkg.Name()
	}
	if parent, ok := s.ParentName(); ok {
		out.Extends = parent.Name()
	}
	for _, i := range s.Interfaces() {
		out.Implements = append(out.Implements, i.Name())
	}
	for _, f := range s.UsedFqns() {
		out.Uses = append(out.Uses, f.Name())
	}
	for _, m := range s.Methods(c) {
		out.Methods = append(out.Methods, toYAMLMethod(m))
	}
	return out
}

func toYAMLMethod(m *model.Method) yamlMethod {
	out := yamlMethod{Name: m.Name(), Returns: m.ReturnType().String()}
	for _, a := range m.Arguments() {
		out.Arguments = append(out.Arguments, toYAMLArgument(a))
	}
	return out
}

func toYAMLArgument(a *model.Argument) yamlArgument {
	return yamlArgument{Name: a.Name(), Type: a.Type().String(), Array: a.IsArray()}
}

func encodeYAML(v any) string {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return "# yaml: " + err.Error() + "\n"
	}
	if err := enc.Close(); err != nil {
		return "# yaml: " + err.Error() + "\n"
	}
	return b.String()
}
