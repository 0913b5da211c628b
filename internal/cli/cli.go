package cli

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultConfigName = "prototype"
	envPrefix         = "PROTOTYPE"
)

// ParseArgs parses command line arguments into Config. Values not given on
// the command line come from PROTOTYPE_* environment variables, then from
// the config file.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	fs := pflag.NewFlagSet("prototype", pflag.ContinueOnError)
	fs.StringP("out-dir", "o", "", "output directory (default stdout)")
	fs.StringP("format", "f", FormatPHP, "output format: php, go or yaml")
	fs.Bool("inherited", false, "render parent and interface methods too")
	only := fs.String("only", "", "comma-separated Fqn glob patterns to generate")
	fs.String("go-package", "", "package name for go output")
	fs.Bool("strict", false, "fail on any parse error")
	fs.Bool("verbose", false, "enable debug logging")
	typeFlags := fs.StringToString("type", nil, "type mapping as from=to, repeatable")
	fs.StringVarP(&cfg.ConfigFile, "config", "c", "", "config file (default ./prototype.yml if present)")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := readConfigFile(v, cfg.ConfigFile); err != nil {
		return nil, err
	}

	for key, flag := range map[string]string{
		"out_dir":    "out-dir",
		"format":     "format",
		"inherited":  "inherited",
		"go_package": "go-package",
		"strict":     "strict",
		"verbose":    "verbose",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind --%s: %w", flag, err)
		}
	}

	cfg.Input = v.GetString("input")
	if fs.NArg() == 1 {
		cfg.Input = fs.Arg(0)
	}
	cfg.OutDir = v.GetString("out_dir")
	cfg.Format = strings.ToLower(strings.TrimSpace(v.GetString("format")))
	cfg.InheritedMethods = v.GetBool("inherited")
	cfg.GoPackage = v.GetString("go_package")
	cfg.Strict = v.GetBool("strict")
	cfg.Verbose = v.GetBool("verbose")

	if fs.Changed("only") {
		cfg.Only = splitCommaList(*only)
	} else {
		for _, p := range v.GetStringSlice("only") {
			cfg.Only = append(cfg.Only, splitCommaList(p)...)
		}
	}

	if v.IsSet("types") && reflect.ValueOf(v.Get("types")).Kind() == reflect.Map {
		return nil, errors.New("config types: expected a list of {from, to} entries, got a map")
	}
	if err := v.UnmarshalKey("types", &cfg.Types); err != nil {
		return nil, fmt.Errorf("config types: %w", err)
	}
	cfg.Types = append(cfg.Types, sortedMappings(*typeFlags)...)
	for _, t := range cfg.Types {
		if strings.TrimSpace(t.From) == "" {
			return nil, fmt.Errorf("type mapping to %q has no source type", t.To)
		}
	}

	switch cfg.Format {
	case FormatPHP, FormatGo, FormatYAML:
	default:
		return nil, fmt.Errorf("unknown format %q (supported: php, go, yaml)", cfg.Format)
	}
	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(defaultConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func sortedMappings(m map[string]string) []TypeMapping {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]TypeMapping, 0, len(keys))
	for _, k := range keys {
		out = append(out, TypeMapping{From: strings.TrimSpace(k), To: strings.TrimSpace(m[k])})
	}
	return out
}

func splitCommaList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
