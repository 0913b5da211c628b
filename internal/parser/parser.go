package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/seitarof/prototype/internal/model"
)

// Parser reads PML text into a container of structures.
type Parser interface {
	Parse(src string) *Result
}

type parserImpl struct{}

// New returns default parser.
func New() Parser {
	return &parserImpl{}
}

var methodPattern = regexp.MustCompile(`(?i)([a-z_0-9]+) ([a-z_0-9]+)\(([^)]*)\)`)

const (
	keywordExtends    = "extends"
	keywordImplements = "implements"
)

// Parse never fails: rejected lines end up in Result.Diagnostics and
// parsing continues with the next line.
func (p *parserImpl) Parse(src string) *Result {
	lines := strings.Split(src, "\n")
	res := &Result{Container: model.NewContainer()}
	res.Stats.Lines = len(lines)

	var current *model.Struct
	commit := func() {
		if current == nil {
			return
		}
		res.Container.Put(current)
		res.Stats.Structures++
		current = nil
	}

	for i, line := range lines {
		lineNo := i + 1
		line = strings.TrimRight(line, "\r")

		if strings.TrimSpace(line) == "" {
			res.Stats.EmptyLines++
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			res.Stats.Comments++
			continue
		}

		if strings.HasPrefix(line, " ") {
			if current == nil {
				res.errorf(lineNo, "Unexpected method")
				continue
			}
			m, err := parseMethod(line)
			if err != nil {
				res.errorf(lineNo, "Unable to parse method signature: %v", err)
				continue
			}
			if err := current.AddMethod(m); err != nil {
				res.errorf(lineNo, "Unable to add method: %v", err)
			}
			continue
		}

		commit()
		s, err := parseStruct(line)
		if err != nil {
			res.errorf(lineNo, "Unable to parse structure signature: %v", err)
			continue
		}
		current = s
	}
	commit()

	return res
}

func parseMethod(line string) (*model.Method, error) {
	chunks := methodPattern.FindStringSubmatch(line)
	if chunks == nil {
		return nil, fmt.Errorf("expected \"<type> <name>(<args>)\"")
	}

	args, err := parseArgs(chunks[3])
	if err != nil {
		return nil, err
	}
	return model.NewMethod(chunks[2], model.ParseType(chunks[1]), args...), nil
}

func parseArgs(body string) ([]*model.Argument, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}

	parts := strings.Split(body, ",")
	args := make([]*model.Argument, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty argument in %q", body)
		}
		fields := splitSpaces(part)
		if len(fields) < 2 {
			return nil, fmt.Errorf("argument %q has no name", part)
		}
		arg, err := parseArg(fields[0], fields[1])
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func parseArg(typ, name string) (*model.Argument, error) {
	isArray := false
	if strings.HasSuffix(typ, "[]") {
		isArray = true
		typ = strings.TrimSuffix(typ, "[]")
	}
	if typ == "" {
		return nil, fmt.Errorf("argument %q has no type", name)
	}
	return model.NewArgument(model.ParseType(typ), name, isArray), nil
}

func parseStruct(line string) (*model.Struct, error) {
	chunks := splitSpaces(strings.ReplaceAll(line, ",", " "))
	if len(chunks) < 2 {
		return nil, fmt.Errorf("malformed structure signature %q", strings.TrimSpace(line))
	}

	var build func(model.Fqn, model.Fqn, ...model.Fqn) *model.Struct
	switch model.Tag(chunks[0]) {
	case model.TagClass:
		build = model.NewClass
	case model.TagInterface:
		build = model.NewInterface
	default:
		return nil, fmt.Errorf("unknown structure %q", chunks[0])
	}

	name := model.NewFqn(chunks[1])
	var base model.Fqn
	offset := 2
	if offset < len(chunks) && chunks[offset] == keywordExtends {
		if offset+1 >= len(chunks) {
			return nil, fmt.Errorf("%s without a base structure", keywordExtends)
		}
		base = model.NewFqn(chunks[offset+1])
		offset += 2
	}

	var impl []model.Fqn
	if offset < len(chunks) && chunks[offset] == keywordImplements {
		for _, c := range chunks[offset+1:] {
			impl = append(impl, model.NewFqn(c))
		}
		offset = len(chunks)
	}
	if offset < len(chunks) {
		return nil, fmt.Errorf("unexpected token %q", chunks[offset])
	}

	return build(name, base, impl...), nil
}

// splitSpaces splits on runs of spaces. Tabs are part of a token.
func splitSpaces(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ' ' })
}
