package cli

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/seitarof/prototype/internal/generator"
	"github.com/seitarof/prototype/internal/matcher"
	"github.com/seitarof/prototype/internal/parser"
)

const stdinName = "-"

// Runner orchestrates parser/matcher/generator layers.
type Runner interface {
	Run(cfg *Config) error
}

type runnerImpl struct {
	parser      parser.Parser
	structMatch matcher.StructMatcher
	generator   generator.Generator
	stdin       io.Reader
	logger      log.FieldLogger
}

// NewRunner creates a default runner implementation.
func NewRunner(
	p parser.Parser,
	sm matcher.StructMatcher,
	g generator.Generator,
) Runner {
	return &runnerImpl{
		parser:      p,
		structMatch: sm,
		generator:   g,
		stdin:       os.Stdin,
		logger:      log.StandardLogger(),
	}
}

// Run executes a single generation cycle.
func (r *runnerImpl) Run(cfg *Config) error {
	name, src, err := r.readInput(cfg.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	res := r.parser.Parse(string(src))
	r.logger.WithFields(log.Fields{
		"input":       name,
		"lines":       res.Stats.Lines,
		"empty":       res.Stats.EmptyLines,
		"comments":    res.Stats.Comments,
		"structures":  res.Container.Size(),
		"diagnostics": len(res.Diagnostics),
	}).Debug("parsed")
	for _, d := range res.Diagnostics {
		r.logger.WithFields(log.Fields{"input": name, "line": d.Line}).Warn(d.Message)
	}
	if cfg.Strict && res.HasErrors() {
		return fmt.Errorf("%s: %d parse errors", name, len(res.Diagnostics))
	}

	structs := r.structMatch.Match(res.Container)
	if len(structs) == 0 {
		return fmt.Errorf("no structures to generate in %s", name)
	}

	if err := r.generator.Generate(cfg, structs, res.Container); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	return nil
}

func (r *runnerImpl) readInput(path string) (string, []byte, error) {
	if path == "" || path == stdinName {
		src, err := io.ReadAll(r.stdin)
		return "stdin", src, err
	}
	src, err := os.ReadFile(path)
	return path, src, err
}
