// Package app implements the tabbedpanel command.
package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hokaccha/go-prettyjson"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-tabbedpanel/internal/logging"
	"github.com/goliatone/go-tabbedpanel/internal/prompt"
	"github.com/goliatone/go-tabbedpanel/pkg/docs"
	"github.com/goliatone/go-tabbedpanel/pkg/expr"
	"github.com/goliatone/go-tabbedpanel/pkg/render"
	"github.com/goliatone/go-tabbedpanel/pkg/renderers/jquery"
	"github.com/goliatone/go-tabbedpanel/pkg/widget"
	"github.com/goliatone/go-tabbedpanel/pkg/widgets"
)

type Option func(*runner)

type runner struct {
	stdout io.Writer
	stderr io.Writer
	driver prompt.Driver
}

// WithStdout redirects command output.
func WithStdout(w io.Writer) Option {
	return func(r *runner) { r.stdout = w }
}

// WithStderr redirects usage and log output.
func WithStderr(w io.Writer) Option {
	return func(r *runner) { r.stderr = w }
}

// WithPromptDriver replaces the terminal prompt used by --interactive.
func WithPromptDriver(d prompt.Driver) Option {
	return func(r *runner) { r.driver = d }
}

// Run parses args and executes the command.
func Run(ctx context.Context, args []string, opts ...Option) error {
	r := &runner{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	cfg, err := Parse(r.stderr, args)
	if err != nil {
		return err
	}
	if cfg.Logging.Writer == nil {
		cfg.Logging.Writer = r.stderr
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}

	out, err := r.execute(ctx, cfg, logger)
	if err != nil {
		logger.Error("tabbedpanel failed", "widget", cfg.Widget, "error", err)
		return err
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, out, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Info("output written", "path", cfg.Output, "bytes", len(out))
		return nil
	}
	_, err = r.stdout.Write(out)
	return err
}

func (r *runner) execute(ctx context.Context, cfg Config, logger *slog.Logger) ([]byte, error) {
	registry := widgets.NewRegistry()

	if cfg.Docs != "" {
		w, err := registry.Build(cfg.Widget, nil)
		if err != nil {
			return nil, err
		}
		return exportDocs(cfg.Docs, w)
	}

	attrs, err := parsePairs("attr", cfg.Attrs)
	if err != nil {
		return nil, err
	}
	if cfg.Interactive {
		declared, err := registry.Build(cfg.Widget, nil)
		if err != nil {
			return nil, err
		}
		driver := r.driver
		if driver == nil {
			driver = prompt.NewSurveyDriver()
		}
		attrs, err = prompt.Collect(ctx, driver, declared.Attributes(), attrs)
		if err != nil {
			return nil, err
		}
	}

	w, err := registry.Build(cfg.Widget, attrs)
	if err != nil {
		return nil, err
	}
	logger.Debug("widget built", "widget", w.Name(), "attributes", len(attrs))

	evalCtx, err := evaluationContext(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Params {
		values, err := w.Evaluate(expr.NewStack(evalCtx))
		if err != nil {
			return nil, err
		}
		logger.Debug("widget evaluated", "widget", w.Name(), "params", values.Len())
		return encodeParams(values, cfg.Color)
	}

	body := ""
	if cfg.BodyFile != "" {
		data, err := os.ReadFile(cfg.BodyFile)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		body = string(data)
	}

	renderers := render.NewRegistry()
	jq, err := jquery.New(
		jquery.WithTemplatesDir(cfg.Templates),
		jquery.WithThemeVariant(cfg.Variant),
	)
	if err != nil {
		return nil, err
	}
	if err := renderers.Register(jq); err != nil {
		return nil, err
	}
	renderer, err := renderers.Get(w.Theme())
	if err != nil {
		return nil, err
	}

	out, err := renderer.Render(ctx, w, render.RenderOptions{
		Values: evalCtx.Values,
		Extras: evalCtx.Extras,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("widget rendered", "widget", w.Name(), "renderer", renderer.Name(), "bytes", len(out))
	return out, nil
}

func evaluationContext(cfg Config) (expr.Context, error) {
	values := map[string]any{}
	if cfg.ValuesFile != "" {
		data, err := os.ReadFile(cfg.ValuesFile)
		if err != nil {
			return expr.Context{}, fmt.Errorf("read values file: %w", err)
		}
		if err := yaml.Unmarshal(data, &values); err != nil {
			return expr.Context{}, fmt.Errorf("decode values file: %w", err)
		}
		if values == nil {
			values = map[string]any{}
		}
	}
	pairs, err := parsePairs("value", cfg.Values)
	if err != nil {
		return expr.Context{}, err
	}
	for key, value := range pairs {
		values[key] = value
	}

	extraPairs, err := parsePairs("extra", cfg.Extras)
	if err != nil {
		return expr.Context{}, err
	}
	extras := make(map[string]any, len(extraPairs))
	for key, value := range extraPairs {
		extras[key] = value
	}
	return expr.Context{Values: values, Extras: extras}, nil
}

func exportDocs(format string, w widget.Widget) ([]byte, error) {
	if format == DocsYAML {
		return docs.YAML(w.Name(), w.Attributes())
	}
	return []byte(docs.Markdown(w.Name(), w.Attributes())), nil
}

// encodeParams prints the ordered map indented. Colored output goes through
// prettyjson, which sorts keys.
func encodeParams(values json.Marshaler, color bool) ([]byte, error) {
	raw, err := values.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode params: %w", err)
	}
	if color {
		out, err := prettyjson.Format(raw)
		if err != nil {
			return nil, fmt.Errorf("format params: %w", err)
		}
		return append(out, '\n'), nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("format params: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
