package resolver

import (
	"github.com/seitarof/prototype/internal/model"
)

// GoRules returns built-in rules for the Go target in priority order.
func GoRules() []Rule {
	return []Rule{
		&TagRule{Mapping: map[model.Tag]string{
			model.TagString: "string",
			model.TagInt:    "int",
			model.TagFloat:  "float32",
			model.TagDouble: "float64",
			model.TagBool:   "bool",
			model.TagMixed:  "any",
			model.TagVoid:   "",
		}},
	}
}

// TagRule: primitive tag -> fixed target name.
type TagRule struct {
	Mapping map[model.Tag]string
}

func (r *TagRule) Name() string { return "tag" }

func (r *TagRule) Try(t model.TypeRef) (model.Text, bool) {
	if !t.IsPrimitive() {
		return "", false
	}
	name, ok := r.Mapping[t.Tag()]
	return model.Text(name), ok
}

// MappingRule: user supplied translations keyed by tag or dotted Fqn name.
type MappingRule struct {
	Mapping map[string]string
}

// NewMappingRule returns nil when mapping is empty so callers can pass it
// straight to New.
func NewMappingRule(mapping map[string]string) Rule {
	if len(mapping) == 0 {
		return nil
	}
	normalized := make(map[string]string, len(mapping))
	for k, v := range mapping {
		if _, ok := model.LookupPrimitive(k); !ok {
			k = model.NewFqn(k).Name()
		}
		normalized[k] = v
	}
	return &MappingRule{Mapping: normalized}
}

func (r *MappingRule) Name() string { return "mapping" }

func (r *MappingRule) Try(t model.TypeRef) (model.Text, bool) {
	name, ok := r.Mapping[t.String()]
	return model.Text(name), ok
}
