// Package render writes a resolved tool configuration for consumption by
// the launch scripts.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alessio/shellescape"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/dsalfran/ml-workspace/internal/toolenv"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("❌ unknown output format")

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatEnv  Format = "env"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatEnv, FormatJSON, FormatYAML}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// MachineReadable reports whether the output is meant to be parsed.
func (f Format) MachineReadable() bool {
	return f != FormatText
}

// Write renders cfg to w.
func Write(w io.Writer, cfg toolenv.Config, format Format) error {
	vars := cfg.Vars()

	switch format {
	case FormatText:
		return writeText(w, vars)
	case FormatEnv:
		return writeEnv(w, vars)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(toMap(vars)), "failed to encode json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toNode(vars)); err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		return errors.Wrap(enc.Close(), "failed to encode yaml")
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", string(format))
	}
}

func writeText(w io.Writer, vars []toolenv.Var) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, v := range vars {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", v.Name, v.Value); err != nil {
			return errors.Wrap(err, "failed to write text")
		}
	}
	return errors.Wrap(tw.Flush(), "failed to write text")
}

func writeEnv(w io.Writer, vars []toolenv.Var) error {
	for _, v := range vars {
		if _, err := fmt.Fprintf(w, "export %s=%s\n", v.Name, shellescape.Quote(v.Value)); err != nil {
			return errors.Wrap(err, "failed to write env")
		}
	}
	return nil
}

func toMap(vars []toolenv.Var) map[string]string {
	m := make(map[string]string, len(vars))
	for _, v := range vars {
		m[v.Name] = v.Value
	}
	return m
}

// toNode keeps the Vars order, which a plain map would lose.
func toNode(vars []toolenv.Var) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, v := range vars {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: v.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: v.Value, Style: yaml.DoubleQuotedStyle},
		)
	}
	return node
}
