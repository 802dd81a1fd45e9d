package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"

	"github.com/dshills/attachcfg/internal/config"
)

// writeDocument prints a JSON document in the configured output format,
// keeping its key order.
func writeDocument(w io.Writer, doc []byte, out config.OutputConfig) error {
	switch out.Format {
	case config.FormatYAML:
		return writeYAML(w, doc, out.Indent)
	case config.FormatJSON:
		var formatted []byte
		if out.Indent == 0 {
			formatted = append(pretty.Ugly(doc), '\n')
		} else {
			formatted = pretty.PrettyOptions(doc, &pretty.Options{
				Width:  80,
				Indent: strings.Repeat(" ", out.Indent),
			})
		}
		_, err := w.Write(formatted)
		return err
	default:
		return fmt.Errorf("unknown output format %q", out.Format)
	}
}

// writeValue marshals v to JSON and prints it like writeDocument.
func writeValue(w io.Writer, v any, out config.OutputConfig) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return writeDocument(w, doc, out)
}

func writeYAML(w io.Writer, doc []byte, indent int) error {
	// JSON is valid YAML, so parsing it yields a node tree in document order.
	var node yaml.Node
	if err := yaml.Unmarshal(doc, &node); err != nil {
		return fmt.Errorf("converting to YAML: %w", err)
	}
	blockStyle(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(max(indent, 2))
	if err := enc.Encode(&node); err != nil {
		return err
	}
	return enc.Close()
}

// blockStyle drops the flow and quoting styles inherited from JSON.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
