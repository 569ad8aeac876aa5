// Package docs exports widget attribute tables for tooling and tag library
// documentation.
package docs

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-tabbedpanel/pkg/widget"
)

// Document is the YAML shape of an exported widget.
type Document struct {
	Widget     string             `yaml:"widget"`
	Attributes []widget.Attribute `yaml:"attributes"`
}

// Markdown renders attrs as a Markdown table headed by the widget name.
func Markdown(name string, attrs []widget.Attribute) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", name)
	b.WriteString("| Attribute | Type | Default | Required | Description |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, attr := range attrs {
		required := ""
		if attr.Required {
			required = "yes"
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s | %s |\n",
			attr.Name, attr.Kind, cell(attr.Default), required, cell(attr.Description))
	}
	return b.String()
}

// YAML encodes attrs as a Document.
func YAML(name string, attrs []widget.Attribute) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Widget: name, Attributes: attrs}); err != nil {
		return nil, fmt.Errorf("docs: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("docs: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseYAML decodes a Document produced by YAML.
func ParseYAML(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("docs: decode yaml: %w", err)
	}
	return doc, nil
}

func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
