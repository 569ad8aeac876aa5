// Package gotemplate builds the pongo2-backed go-template engine used by the
// widget renderers and registers the widget filters on it.
package gotemplate

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-tabbedpanel/pkg/render/template"
)

// Engine is the go-template engine. It satisfies template.TemplateRenderer.
type Engine = gotemplatepkg.Engine

var _ template.TemplateRenderer = (*Engine)(nil)

// ErrNoSource is returned by New when neither a base dir nor an fs.FS is
// configured.
var ErrNoSource = errors.New("gotemplate: need to provide either base dir or fs.FS")

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir    string
	templates  fs.FS
	extension  string
	templateFn map[string]any
	globalData map[string]any
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the ".tmpl" default.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		if ext = strings.TrimSpace(ext); ext != "" {
			cfg.extension = ext
		}
	}
}

// WithTemplateFunc registers extra filters or helper functions. Filters are
// registered with pongo2 once per name.
func WithTemplateFunc(funcs map[string]any) Option {
	return func(cfg *config) {
		for name, fn := range funcs {
			cfg.templateFn[strings.TrimSpace(name)] = fn
		}
	}
}

// WithGlobalData seeds values visible to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// New constructs a go-template engine with the widget filters registered.
func New(options ...Option) (*Engine, error) {
	cfg := &config{
		extension:  ".tmpl",
		templateFn: Filters(),
		globalData: map[string]any{},
	}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, ErrNoSource
	}

	engineOpts := []gotemplatepkg.Option{
		gotemplatepkg.WithExtension(cfg.extension),
		gotemplatepkg.WithTemplateFunc(cfg.templateFn),
	}
	if cfg.baseDir != "" {
		engineOpts = append(engineOpts, gotemplatepkg.WithBaseDir(cfg.baseDir))
	}
	if cfg.templates != nil {
		engineOpts = append(engineOpts, gotemplatepkg.WithFS(cfg.templates))
	}
	if len(cfg.globalData) > 0 {
		engineOpts = append(engineOpts, gotemplatepkg.WithGlobalData(cfg.globalData))
	}

	engine, err := gotemplatepkg.NewRenderer(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: %w", err)
	}
	return engine, nil
}

// Filters returns the widget filters: jsvar and topics.
func Filters() map[string]any {
	return map[string]any{
		"jsvar":  pongo2.FilterFunction(filterJSVar),
		"topics": pongo2.FilterFunction(filterTopics),
	}
}

// filterJSVar turns an element id into a JavaScript identifier suffix.
func filterJSVar(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(JSIdentifier(in.String())), nil
}

// filterTopics splits a comma separated topic list into trimmed names.
func filterTopics(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(SplitTopics(in.String())), nil
}

// JSIdentifier replaces every rune that is not valid in a JavaScript
// identifier with an underscore.
func JSIdentifier(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

// SplitTopics splits a comma separated topic list, dropping blanks.
func SplitTopics(list string) []string {
	var out []string
	for _, topic := range strings.Split(list, ",") {
		if topic = strings.TrimSpace(topic); topic != "" {
			out = append(out, topic)
		}
	}
	return out
}
