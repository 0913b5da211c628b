package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/seitarof/prototype/internal/model"
)

// Generator renders structures and writes them out.
type Generator interface {
	Generate(cfg Config, structs []*model.Struct, c *model.Container) error
}

// Config is the minimum config contract required by generator.
type Config interface {
	OutputDir() string
	Inherited() bool
}

// Target renders IR nodes as source text of one language.
type Target interface {
	Name() string
	Ext() string
	Generate(n model.Node, ctx Context) string
}

// Layout is implemented by targets that place their files themselves
// instead of mirroring the namespace.
type Layout interface {
	Path(s *model.Struct) string
}

// Context carries the enclosing structure, the structures rendered in the
// current run and, when inherited methods are wanted, the container used to
// resolve parents and interfaces.
type Context struct {
	Enclosing *model.Struct
	Selected  *model.Container
	Container *model.Container

	aliases map[string]string
}

// localName is the name f is known by inside the rendered file.
func (c Context) localName(f model.Fqn) string {
	if name, ok := c.aliases[f.Name()]; ok {
		return name
	}
	return f.Chunk(-1)
}

func (c Context) selected(f model.Fqn) (*model.Struct, bool) {
	if c.Selected == nil {
		return nil, false
	}
	return c.Selected.Get(f)
}

// generated reports whether f is rendered in this run. Without a run every
// reference counts as generated.
func (c Context) generated(f model.Fqn) bool {
	return c.Selected == nil || c.Selected.Has(f)
}

// Formatter formats generated code.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// FileWriter writes generated code.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type generatorImpl struct {
	target    Target
	formatter Formatter
	writer    FileWriter
}

type goimportsFormatter struct{}

type nopFormatter struct{}

type fileWriter struct{}

type streamWriter struct {
	w io.Writer
}

// New creates a code generator.
func New(t Target, f Formatter, w FileWriter) Generator {
	return &generatorImpl{target: t, formatter: f, writer: w}
}

// NewGoimportsFormatter creates a formatter backed by goimports.
func NewGoimportsFormatter() Formatter {
	return &goimportsFormatter{}
}

// NewNopFormatter returns source unchanged.
func NewNopFormatter() Formatter {
	return &nopFormatter{}
}

// NewFileWriter creates a plain file writer. Parent directories are created.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

// NewStreamWriter ignores file names and appends everything to w.
func NewStreamWriter(w io.Writer) FileWriter {
	return &streamWriter{w: w}
}

func (g *generatorImpl) Generate(cfg Config, structs []*model.Struct, c *model.Container) error {
	if len(structs) == 0 {
		return fmt.Errorf("no structures to generate")
	}

	ctx := Context{Selected: model.NewContainer()}
	for _, s := range structs {
		ctx.Selected.Put(s)
	}
	if cfg.Inherited() {
		ctx.Container = c
	}

	for _, s := range structs {
		filename := FilePath(s, g.target.Ext())
		if l, ok := g.target.(Layout); ok {
			filename = l.Path(s)
		}
		if dir := cfg.OutputDir(); dir != "" {
			filename = filepath.Join(dir, filename)
		}

		src := g.target.Generate(s, ctx)
		formatted, err := g.formatter.Format(filename, []byte(src))
		if err != nil {
			return fmt.Errorf("format %s: %w", s.Fqn(), err)
		}
		if err := g.writer.Write(filename, formatted); err != nil {
			return fmt.Errorf("write %s: %w", s.Fqn(), err)
		}
	}
	return nil
}

// FilePath returns the relative output path of s: one directory per
// package segment plus the short name and ext.
func FilePath(s *model.Struct, ext string) string {
	return filepath.Join(s.Fqn().Chunks()...) + ext
}

func (f *goimportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

func (f *nopFormatter) Format(_ string, src []byte) ([]byte, error) {
	return src, nil
}

func (w *fileWriter) Write(filename string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

func (w *streamWriter) Write(_ string, data []byte) error {
	_, err := w.w.Write(data)
	return err
}
