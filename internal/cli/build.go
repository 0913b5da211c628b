package cli

import (
	"fmt"
	"io"

	"github.com/seitarof/prototype/internal/generator"
	"github.com/seitarof/prototype/internal/resolver"
)

// NewGenerator wires the target, formatter and writer selected by cfg.
// Without an output directory everything is written to stdout.
func NewGenerator(cfg *Config, stdout io.Writer) (generator.Generator, error) {
	var w generator.FileWriter = generator.NewStreamWriter(stdout)
	if cfg.OutputDir() != "" {
		w = generator.NewFileWriter()
	}

	custom := resolver.NewMappingRule(cfg.TypeMap())
	switch cfg.Format {
	case FormatPHP, "":
		t := generator.NewPHP(resolver.New(custom))
		return generator.New(t, generator.NewNopFormatter(), w), nil
	case FormatGo:
		rules := append([]resolver.Rule{custom}, resolver.GoRules()...)
		t := generator.NewGo(resolver.New(rules...), cfg.GoPackage)
		return generator.New(t, generator.NewGoimportsFormatter(), w), nil
	case FormatYAML:
		return generator.New(generator.NewYAML(), generator.NewNopFormatter(), w), nil
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.Format)
	}
}
