package cli

// Output formats.
const (
	FormatPHP  = "php"
	FormatGo   = "go"
	FormatYAML = "yaml"
)

// Config stores CLI options for a single generation run.
type Config struct {
	Input            string
	OutDir           string
	Format           string
	InheritedMethods bool
	Only             []string
	GoPackage        string
	Types            []TypeMapping
	Strict           bool
	Verbose          bool
	ShowVersion      bool
	ConfigFile       string
}

// TypeMapping renames a primitive tag or a structure in the output.
type TypeMapping struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// OutputDir returns destination directory for generator layer. Empty means stdout.
func (c *Config) OutputDir() string {
	return c.OutDir
}

// Inherited reports whether parent and interface methods are rendered too.
func (c *Config) Inherited() bool {
	return c.InheritedMethods
}

// TypeMap flattens Types; later entries win.
func (c *Config) TypeMap() map[string]string {
	if len(c.Types) == 0 {
		return nil
	}
	out := make(map[string]string, len(c.Types))
	for _, t := range c.Types {
		out[t.From] = t.To
	}
	return out
}
