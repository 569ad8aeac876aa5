package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"

	"github.com/goliatone/go-tabbedpanel/internal/logging"
	"github.com/goliatone/go-tabbedpanel/pkg/widgets"
)

// Docs formats accepted by --docs.
const (
	DocsMarkdown = "markdown"
	DocsYAML     = "yaml"
)

type Config struct {
	Widget      string
	Attrs       []string
	Values      []string
	Extras      []string
	ValuesFile  string
	BodyFile    string
	Output      string
	Templates   string
	Variant     string
	Docs        string
	Params      bool
	Color       bool
	Interactive bool
	Logging     logging.Options
}

// Parse sets config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func Parse(stderr io.Writer, args []string) (Config, error) {
	var cfg Config

	fs := ff.NewFlagSet("tabbedpanel")
	fs.StringVar(&cfg.Widget, 'w', "widget", widgets.WidgetTabbedPanel, "Widget tag to render.")
	fs.StringListVar(&cfg.Attrs, 'a', "attr", "Widget attribute as key=value. Can set more than once.")
	fs.StringListVar(&cfg.Values, 'v', "value", "Evaluation context value as key=value, read by %{key}. Can set more than once.")
	fs.StringListVar(&cfg.Extras, 'x', "extra", "Evaluation context extra as key=value, read by %{extras.key}. Can set more than once.")
	fs.StringVar(&cfg.ValuesFile, 0, "values-file", "", "YAML file with evaluation context values.")
	fs.StringVar(&cfg.BodyFile, 'b', "body", "", "File with the inner markup (tab list and panels).")
	fs.StringVar(&cfg.Output, 'o', "output", "", "Output file (stdout if empty).")
	fs.StringVar(&cfg.Templates, 't', "templates", "", "Directory overriding the embedded templates.")
	fs.StringVar(&cfg.Variant, 0, "variant", "", "Theme variant.")
	fs.StringVar(&cfg.Docs, 0, "docs", "", "Print the attribute table instead of rendering (markdown or yaml).")
	fs.BoolVar(&cfg.Params, 'p', "params", "Print the resolved parameter map as JSON instead of rendering.")
	fs.BoolVar(&cfg.Color, 0, "color", "Colorize --params output. Keys are sorted.")
	fs.BoolVar(&cfg.Interactive, 'i', "interactive", "Prompt for attributes not given with --attr.")
	_ = fs.String('c', "config", "", "Path to YAML config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.Logging.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("TABBEDPANEL"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error on -h/--help too; print usage either way.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return Config{}, err
	}

	switch cfg.Docs {
	case "", DocsMarkdown, DocsYAML:
	default:
		return Config{}, fmt.Errorf("invalid --docs format %q (valid: %s, %s)", cfg.Docs, DocsMarkdown, DocsYAML)
	}
	return cfg, nil
}

// parsePairs splits key=value arguments. A later key replaces an earlier
// one.
func parsePairs(flag string, pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("--%s: expected key=value, got %q", flag, pair)
		}
		out[key] = value
	}
	return out, nil
}
