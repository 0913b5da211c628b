package matcher

import (
	"fmt"
	"path"
	"strings"

	"github.com/seitarof/prototype/internal/model"
)

// StructMatcher selects the structures of a container that get generated.
type StructMatcher interface {
	Match(c *model.Container) []*model.Struct
}

type structMatcherImpl struct {
	patterns []string
}

// NewStructMatcher returns a matcher for glob patterns over dotted Fqn names
// or short names. No patterns selects everything.
func NewStructMatcher(patterns []string) (StructMatcher, error) {
	kept := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		p = strings.ReplaceAll(strings.ReplaceAll(p, "/", "."), "\\", ".")
		if _, err := path.Match(p, ""); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		kept = append(kept, p)
	}
	return &structMatcherImpl{patterns: kept}, nil
}

func (m *structMatcherImpl) Match(c *model.Container) []*model.Struct {
	all := c.All()
	if len(m.patterns) == 0 {
		return all
	}

	out := make([]*model.Struct, 0, len(all))
	for _, s := range all {
		if m.matches(s) {
			out = append(out, s)
		}
	}
	return out
}

func (m *structMatcherImpl) matches(s *model.Struct) bool {
	for _, p := range m.patterns {
		if ok, _ := path.Match(p, s.Fqn().Name()); ok {
			return true
		}
		if ok, _ := path.Match(p, s.Name()); ok {
			return true
		}
	}
	return false
}
