package resolver

import (
	"github.com/seitarof/prototype/internal/model"
)

// Resolver maps IR types to target language type names before rendering.
// The result is either the unchanged model.TypeRef or a model.Text holding
// the translated name.
type Resolver interface {
	Resolve(t model.TypeRef) model.Node
}

// Rule tries to translate one type.
type Rule interface {
	Name() string
	Try(t model.TypeRef) (model.Text, bool)
}

type resolverImpl struct {
	rules []Rule
}

// New builds resolver with rule chain. Without rules it is the identity.
func New(rules ...Rule) Resolver {
	kept := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r != nil {
			kept = append(kept, r)
		}
	}
	return &resolverImpl{rules: kept}
}

func (r *resolverImpl) Resolve(t model.TypeRef) model.Node {
	for _, rule := range r.rules {
		if text, ok := rule.Try(t); ok {
			return text
		}
	}
	return t
}
